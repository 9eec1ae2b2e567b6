package hlshash

import (
	"encoding/binary"
	"math/big"
)

const wordBytes = 8

var (
	bigThree     = big.NewInt(3)
	bigFive      = big.NewInt(5)
	bigSeventeen = big.NewInt(17)
)

// rol rotates the low pp.WordBits bits of x left by rr positions. The
// rotation amount is reduced modulo WordBits first, so any non-negative rr is
// valid.
func rol(pp *Params, x *big.Int, rr int) *big.Int {
	rr %= pp.WordBits
	out := new(big.Int).Lsh(x, uint(rr))
	out.Or(out, new(big.Int).Rsh(x, uint(pp.WordBits-rr)))
	return out.And(out, pp.wordMask)
}

// absorb folds one message block into the state and returns the new state.
// The block is zero-padded on the right to a multiple of eight bytes, parsed
// into big-endian 64-bit words, and each word w at position i is combined
// twice: added into state[i mod n] modulo P, then (w>>16)&wordMask is XORed
// into the following element. Word order matters; it decides which positions
// are added into versus XOR-diffused.
func absorb(pp *Params, state []*big.Int, block []byte) []*big.Int {
	padded := block
	if len(block)%wordBytes != 0 {
		padded = make([]byte, len(block)+wordBytes-len(block)%wordBytes)
		copy(padded, block)
	}

	ss := make([]*big.Int, len(state))
	copy(ss, state)

	nn := len(ss)
	for ii := 0; ii*wordBytes < len(padded); ii++ {
		word := binary.BigEndian.Uint64(padded[ii*wordBytes : (ii+1)*wordBytes])
		ww := new(big.Int).SetUint64(word)

		idx := ii % nn
		sum := new(big.Int).Add(ss[idx], ww)
		ss[idx] = sum.Mod(sum, pp.Prime)

		nextIdx := (idx + 1) % nn
		spread := ww.Rsh(ww, 16)
		spread.And(spread, pp.wordMask)
		ss[nextIdx] = new(big.Int).Xor(ss[nextIdx], spread)
	}
	return ss
}

// diffuse is the linear mixing half of a round. Every output element is
// computed from the pre-round values at positions i, i+1 and i+7, so the
// input vector must not be written while the pass runs; diffuse therefore
// always allocates a fresh output vector.
func diffuse(pp *Params, state []*big.Int) []*big.Int {
	nn := len(state)
	out := make([]*big.Int, nn)
	for ii := 0; ii < nn; ii++ {
		shifted := new(big.Int).Rsh(state[(ii+7)%nn], 3)
		mix := shifted.Xor(state[(ii+1)%nn], shifted)
		mix.Add(state[ii], mix)
		mix.Mod(mix, pp.Prime)
		out[ii] = rol(pp, mix, (ii*3)%pp.WordBits)
	}
	return out
}

// confuse is the non-linear half of a round, applied element-wise:
// x -> x^3 + x^5 + 17 (mod P).
func confuse(pp *Params, state []*big.Int) []*big.Int {
	out := make([]*big.Int, len(state))
	for ii, xx := range state {
		x3 := new(big.Int).Exp(xx, bigThree, pp.Prime)
		x5 := new(big.Int).Exp(xx, bigFive, pp.Prime)
		vv := x3.Add(x3, x5)
		vv.Add(vv, bigSeventeen)
		out[ii] = vv.Mod(vv, pp.Prime)
	}
	return out
}

// performRound applies one full diffusion+confusion round. Confuse reads
// diffuse's completed output, never a mix of old and new values.
func performRound(pp *Params, state []*big.Int) []*big.Int {
	return confuse(pp, diffuse(pp, state))
}

// finalizeState runs the extra rounds applied after the last block, with no
// further absorption, to push the final block's influence across the whole
// state before extraction.
func finalizeState(pp *Params, state []*big.Int) []*big.Int {
	ss := state
	for ii := 0; ii < FinalRounds; ii++ {
		ss = confuse(pp, diffuse(pp, ss))
	}
	return ss
}
