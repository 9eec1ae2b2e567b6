package hlshash

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// shakeInts squeezes count*bytesPerInt bytes out of SHAKE128 seeded with seed
// and parses them as big-endian unsigned integers. Values are returned
// unreduced; callers that need field elements reduce modulo pp.Prime.
func shakeInts(seed []byte, count int, bytesPerInt int) []*big.Int {
	shake := sha3.NewShake128()
	shake.Write(seed)

	raw := make([]byte, count*bytesPerInt)
	shake.Read(raw)

	out := make([]*big.Int, count)
	for ii := 0; ii < count; ii++ {
		start := ii * bytesPerInt
		out[ii] = new(big.Int).SetBytes(raw[start : start+bytesPerInt])
	}
	return out
}

// deriveConst deterministically derives count field elements from a
// domain-separated label. Identical (label, count) pairs always produce
// identical sequences.
func deriveConst(pp *Params, label []byte, count int) []*big.Int {
	seed := make([]byte, 0, len(seedString)+len("::const::")+len(label))
	seed = append(seed, seedString...)
	seed = append(seed, "::const::"...)
	seed = append(seed, label...)

	values := shakeInts(seed, count, pp.BytesPerElem)
	for _, vv := range values {
		vv.Mod(vv, pp.Prime)
	}
	return values
}

// initState produces the initial state vector. The construction is unkeyed:
// the initial state is a public constant derived from the seed string alone.
func initState(pp *Params) []*big.Int {
	return deriveConst(pp, []byte("init"), StateSize)
}
