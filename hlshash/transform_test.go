package hlshash

import (
	"bytes"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetParams(t *testing.T) {
	require := require.New(t)

	pp := GetParams()
	require.Equal(768, pp.WordBits)
	require.Equal(96, pp.BytesPerElem)
	require.Equal(pp.WordBits, pp.Prime.BitLen())

	// Exactly-once initialization: concurrent callers must all see the
	// same instance.
	var wg sync.WaitGroup
	results := make([]*Params, 16)
	for ii := range results {
		wg.Add(1)
		go func(ii int) {
			defer wg.Done()
			results[ii] = GetParams()
		}(ii)
	}
	wg.Wait()
	for _, got := range results {
		require.Same(pp, got)
	}
}

func TestPadding(t *testing.T) {
	require := require.New(t)

	for _, length := range []int{0, 1, 62, 63, 64, 127, 128} {
		blocks := splitIntoBlocks(bytes.Repeat([]byte{0x11}, length))
		paddedLen := 0
		for _, block := range blocks {
			require.Len(block, BlockBytes)
			paddedLen += len(block)
		}
		require.Zero(paddedLen % BlockBytes)
		require.GreaterOrEqual(paddedLen, length+2, "padding must add at least two bytes")
	}
}

func TestPaddingMarkers(t *testing.T) {
	require := require.New(t)

	message := []byte("boundary")
	blocks := splitIntoBlocks(message)
	require.Len(blocks, 1)

	block := blocks[0]
	require.Equal(byte(0x01), block[len(message)])
	require.Equal(byte(0x80), block[BlockBytes-1])
	for ii := len(message) + 1; ii < BlockBytes-1; ii++ {
		require.Equal(byte(0x00), block[ii])
	}
}

// requireInField asserts every element is in [0, P).
func requireInField(t *testing.T, pp *Params, state []*big.Int) {
	t.Helper()
	for ii, elem := range state {
		if elem.Sign() < 0 || elem.Cmp(pp.Prime) >= 0 {
			t.Fatalf("state[%d] out of field range: %v", ii, elem)
		}
	}
}

func TestStateInvariant(t *testing.T) {
	pp := GetParams()

	state := initState(pp)
	require.Len(t, state, StateSize)
	requireInField(t, pp, state)

	block := make([]byte, BlockBytes)
	for ii := range block {
		block[ii] = byte(ii * 7)
	}
	state = absorb(pp, state, block)
	requireInField(t, pp, state)

	for rr := 0; rr < RoundCount; rr++ {
		state = performRound(pp, state)
		requireInField(t, pp, state)
	}

	state = finalizeState(pp, state)
	requireInField(t, pp, state)
}

func TestRoundPurity(t *testing.T) {
	require := require.New(t)
	pp := GetParams()

	state := initState(pp)
	snapshot := make([]*big.Int, len(state))
	for ii, elem := range state {
		snapshot[ii] = new(big.Int).Set(elem)
	}

	first := performRound(pp, state)
	second := performRound(pp, state)
	for ii := range first {
		require.Zero(first[ii].Cmp(second[ii]), "round output differs at index %d", ii)
	}

	// The round must not write through to its input vector.
	for ii := range state {
		require.Zero(state[ii].Cmp(snapshot[ii]), "round mutated its input at index %d", ii)
	}
}

func TestAbsorbShortBlock(t *testing.T) {
	require := require.New(t)
	pp := GetParams()
	state := initState(pp)

	short := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	aligned := make([]byte, 16)
	copy(aligned, short)

	fromShort := absorb(pp, state, short)
	fromAligned := absorb(pp, state, aligned)
	for ii := range fromShort {
		require.Zero(fromShort[ii].Cmp(fromAligned[ii]),
			"zero right-padding changed absorption at index %d", ii)
	}

	// Absorption returns a new vector and leaves its input alone.
	fresh := initState(pp)
	for ii := range state {
		require.Zero(state[ii].Cmp(fresh[ii]), "absorb mutated its input at index %d", ii)
	}
}

func TestDeriveConstDeterministic(t *testing.T) {
	require := require.New(t)
	pp := GetParams()

	first := deriveConst(pp, []byte("vector-a"), 8)
	second := deriveConst(pp, []byte("vector-a"), 8)
	require.Len(first, 8)
	for ii := range first {
		require.Zero(first[ii].Cmp(second[ii]))
	}

	other := deriveConst(pp, []byte("vector-b"), 8)
	same := true
	for ii := range first {
		if first[ii].Cmp(other[ii]) != 0 {
			same = false
			break
		}
	}
	require.False(same, "distinct labels produced identical sequences")
}

func TestRol(t *testing.T) {
	require := require.New(t)
	pp := GetParams()

	x := new(big.Int).SetBytes(bytes.Repeat([]byte{0xC3}, pp.BytesPerElem))
	x.And(x, pp.wordMask)

	// Rotating by the full width (or zero) is the identity.
	require.Zero(rol(pp, x, 0).Cmp(x))
	require.Zero(rol(pp, x, pp.WordBits).Cmp(x))

	// A rotation and its complement cancel.
	roundTrip := rol(pp, rol(pp, x, 13), pp.WordBits-13)
	require.Zero(roundTrip.Cmp(x))
}

func BenchmarkRound(b *testing.B) {
	pp := GetParams()
	state := initState(pp)
	b.ResetTimer()
	for ii := 0; ii < b.N; ii++ {
		_ = performRound(pp, state)
	}
}
