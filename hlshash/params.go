package hlshash

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

const (
	// StateSize is the number of field elements in the internal state.
	StateSize = 512
	// RoundCount is the number of diffusion+confusion rounds applied per
	// absorbed message block.
	RoundCount = 16
	// FinalRounds is the number of extra rounds applied after the last
	// block has been absorbed.
	FinalRounds = 4
	// OutputBitLength is the size of the digest in bits.
	OutputBitLength = 1024
	// BlockBytes is the rate: the padded message is split into chunks of
	// this many bytes.
	BlockBytes = 64

	// DigestSize is the size of the digest in bytes.
	DigestSize = OutputBitLength / 8
)

// seedString is prepended to every domain-separation tag. Changing it changes
// every digest the construction ever produces.
var seedString = []byte("HLS-1024-v0.2")

// primeModulusHex is the canonical hexadecimal form of the field modulus. All
// state elements live in [0, P). The constant is structural: it is not a
// tunable parameter and the construction is only defined for this exact value.
const primeModulusHex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A63A36210000000000090563"

// Params holds the frozen arithmetic parameters derived from the embedded
// modulus. A single instance is computed on first use and shared read-only by
// every hash computation; callers must not mutate its fields.
type Params struct {
	// Prime is the field modulus P.
	Prime *big.Int
	// WordBits is the bit length of P.
	WordBits int
	// BytesPerElem is ceil(WordBits/8), the serialized width of one state
	// element.
	BytesPerElem int

	// wordMask is (1<<WordBits)-1, the window used by rotations and by the
	// XOR step of absorption.
	wordMask *big.Int
}

var (
	paramsOnce   sync.Once
	globalParams *Params
)

// GetParams returns the process-wide parameter set, computing it on first
// call. Concurrent first callers all observe the same fully-initialized
// value.
func GetParams() *Params {
	paramsOnce.Do(func() {
		globalParams = mustParseParams()
	})
	return globalParams
}

func mustParseParams() *Params {
	prime, ok := new(big.Int).SetString(primeModulusHex, 16)
	if !ok {
		// The modulus is compiled into the binary. Failing to parse it
		// means the build itself is broken, so there is nothing for a
		// caller to handle.
		panic(any(errors.Errorf("hlshash: embedded prime modulus is not valid hex")))
	}

	bits := prime.BitLen()
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))

	return &Params{
		Prime:        prime,
		WordBits:     bits,
		BytesPerElem: (bits + 7) / 8,
		wordMask:     mask,
	}
}
