package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"

	"github.com/jxph/hls1024/hlshash"
	"github.com/jxph/hls1024/logger"
)

// selfTestMessage and selfTestDigestHex pin the known-answer vector the
// self-test checks. Any accidental drift in the construction shows up here
// before it shows up anywhere else.
const (
	selfTestMessage   = "selftest"
	selfTestDigestHex = "bada94d6d018a8eab0b2c8b5ada18f49dc49bb1dd2850006f28ca587b9d4d697" +
		"7b76e3fa41e4309389110eef96ba661843a326ad6b983dff7340bb0218b70b09" +
		"f09beaf921c40347bccb9448aba32f99bd6e04c50f672deee489f1dcb3647866" +
		"6fa43260353cfd3b37eaf7215c8f6b6ac68878bc194080c169780f8f369722c1"
)

// RunSelfTest hashes a fixed message twice, checks the two digests agree, and
// checks them against the pinned known-answer vector. Returns true when
// everything matches.
func RunSelfTest() bool {
	glog.Info("Running HLS-1024 self-test")

	first := hlshash.HLS1024([]byte(selfTestMessage))
	second := hlshash.HLS1024([]byte(selfTestMessage))
	if first != second {
		fmt.Println(logger.CLog(logger.Red, "FAIL: Non-deterministic output"))
		return false
	}

	expected, err := hex.DecodeString(selfTestDigestHex)
	if err != nil {
		glog.Fatalf("RunSelfTest: Problem decoding the pinned digest: %v", err)
	}
	if !bytes.Equal(first[:], expected) {
		fmt.Println(logger.CLog(logger.Red,
			fmt.Sprintf("FAIL: Known-answer mismatch: got %s", hex.EncodeToString(first[:]))))
		return false
	}

	fmt.Println(logger.CLog(logger.Green, "PASS: Deterministic, known-answer vector matches"))
	return true
}
