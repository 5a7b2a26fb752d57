package ssz_test

import (
	"testing"

	ssz "github.com/gfx-labs/go-ssz-core"
	"github.com/stretchr/testify/require"
)

func buildBitlist(t *testing.T, n uint64, bits []bool) *ssz.Bitlist {
	t.Helper()
	b := ssz.NewBitlist(n)
	for _, v := range bits {
		require.NoError(t, b.Append(v))
	}
	return b
}

func TestBitlistMarshal(t *testing.T) {
	b := buildBitlist(t, 256, []bool{false, false, false, true, true, false, false, false})
	data, err := b.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x18, 0x01}, data)
}

func TestBitlistUnmarshalRejectsZeroDelimiterByte(t *testing.T) {
	b := ssz.NewBitlist(256)
	err := b.UnmarshalSSZ([]byte{0x18, 0x00})
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidByteError{}, err)
}

func TestBitlistUnmarshalRecoversLogicalLength(t *testing.T) {
	b := ssz.NewBitlist(256)
	require.NoError(t, b.UnmarshalSSZ([]byte{0x18, 0x02}))
	require.Equal(t, uint64(9), b.Len())

	want := []bool{false, false, false, true, true, false, false, false, false}
	for i, w := range want {
		require.Equal(t, w, b.Get(uint64(i)), "bit %d", i)
	}
}

func TestBitlistUnmarshalRejectsEmptyInput(t *testing.T) {
	b := ssz.NewBitlist(256)
	err := b.UnmarshalSSZ(nil)
	require.Error(t, err)
}

func TestBitlistAppendRejectsOverflow(t *testing.T) {
	b := ssz.NewBitlist(1)
	require.NoError(t, b.Append(true))
	err := b.Append(false)
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidInstanceError{}, err)
}

func TestBitlistRoundTrip(t *testing.T) {
	b := buildBitlist(t, 16, []bool{true, false, true, true, false, false, true})
	data, err := b.MarshalSSZTo(nil)
	require.NoError(t, err)

	decoded := ssz.NewBitlist(16)
	require.NoError(t, decoded.UnmarshalSSZ(data))
	require.Equal(t, b.Len(), decoded.Len())
	for i := uint64(0); i < b.Len(); i++ {
		require.Equal(t, b.Get(i), decoded.Get(i))
	}
}

func TestBitlistHashTreeRootDeterministic(t *testing.T) {
	b := buildBitlist(t, 256, []bool{false, false, false, true, true, false, false, false})
	root1, err := b.HashTreeRoot()
	require.NoError(t, err)
	root2, err := b.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, root1, root2)

	empty := ssz.NewBitlist(256)
	emptyRoot, err := empty.HashTreeRoot()
	require.NoError(t, err)
	require.NotEqual(t, root1, emptyRoot)
}
