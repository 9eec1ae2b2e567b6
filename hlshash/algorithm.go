package hlshash

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// splitIntoBlocks pads the message and chunks it into rate-sized blocks.
// Padding appends 0x01, then (-len-2) mod rate zero bytes, then 0x80, which
// makes the padded length a positive multiple of BlockBytes and adds at least
// two bytes even to a message that already fills a whole number of blocks.
func splitIntoBlocks(message []byte) [][]byte {
	padlen := ((-len(message)-2)%BlockBytes + BlockBytes) % BlockBytes

	padded := make([]byte, 0, len(message)+padlen+2)
	padded = append(padded, message...)
	padded = append(padded, 0x01)
	padded = append(padded, make([]byte, padlen)...)
	padded = append(padded, 0x80)

	blocks := make([][]byte, 0, len(padded)/BlockBytes)
	for ii := 0; ii < len(padded); ii += BlockBytes {
		blocks = append(blocks, padded[ii:ii+BlockBytes])
	}
	return blocks
}

// extractDigest serializes the final state into a domain-separated SHAKE256
// instance and squeezes the digest. Each element is written as exactly
// BytesPerElem big-endian bytes so the byte stream is independent of element
// magnitudes.
func extractDigest(pp *Params, state []*big.Int) [DigestSize]byte {
	shake := sha3.NewShake256()
	shake.Write(seedString)
	shake.Write([]byte("::extract"))

	buf := make([]byte, pp.BytesPerElem)
	for _, vv := range state {
		vv.FillBytes(buf)
		shake.Write(buf)
	}

	var digest [DigestSize]byte
	shake.Read(digest[:])
	return digest
}

// HLS1024 computes the 1024-bit HLS digest of input. The computation is pure
// and deterministic; every call walks the same pipeline over a fresh state
// vector, so concurrent calls never share mutable data.
func HLS1024(input []byte) [DigestSize]byte {
	pp := GetParams()

	state := initState(pp)
	for _, block := range splitIntoBlocks(input) {
		state = absorb(pp, state, block)
		for rr := 0; rr < RoundCount; rr++ {
			state = performRound(pp, state)
		}
	}
	state = finalizeState(pp, state)

	return extractDigest(pp, state)
}

// Sum1024 returns the HLS-1024 digest of data.
func Sum1024(data []byte) [DigestSize]byte {
	return HLS1024(data)
}
