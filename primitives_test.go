package ssz_test

import (
	"testing"

	ssz "github.com/gfx-labs/go-ssz-core"
	"github.com/stretchr/testify/require"
)

func TestBooleanMarshal(t *testing.T) {
	tr := ssz.Boolean(true)
	data, err := tr.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, data)

	fa := ssz.Boolean(false)
	data, err = fa.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, data)
}

func TestBooleanUnmarshalRejectsNonCanonicalByte(t *testing.T) {
	var b ssz.Boolean
	err := b.UnmarshalSSZ([]byte{0x02})
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidByteError{}, err)
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		in := ssz.Boolean(v)
		data, err := in.MarshalSSZTo(nil)
		require.NoError(t, err)

		var out ssz.Boolean
		require.NoError(t, out.UnmarshalSSZ(data))
		require.Equal(t, in, out)
	}
}

func TestUint16Marshal(t *testing.T) {
	u := ssz.Uint16(1337)
	data, err := u.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x39, 0x05}, data)
}

func TestUint16UnmarshalRejectsShortInput(t *testing.T) {
	var u ssz.Uint16
	err := u.UnmarshalSSZ([]byte{0x39})
	require.Error(t, err)
	require.IsType(t, &ssz.ExpectedFurtherInputError{}, err)
}

func TestUint16UnmarshalRejectsLongInput(t *testing.T) {
	var u ssz.Uint16
	err := u.UnmarshalSSZ([]byte{0x39, 0x05, 0x00})
	require.Error(t, err)
	require.IsType(t, &ssz.AdditionalInputError{}, err)
}

func TestUint16RoundTrip(t *testing.T) {
	in := ssz.Uint16(1337)
	data, err := in.MarshalSSZTo(nil)
	require.NoError(t, err)

	var out ssz.Uint16
	require.NoError(t, out.UnmarshalSSZ(data))
	require.Equal(t, in, out)
}

func TestUint32RoundTrip(t *testing.T) {
	in := ssz.Uint32(0xdeadbeef)
	data, err := in.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Len(t, data, 4)

	var out ssz.Uint32
	require.NoError(t, out.UnmarshalSSZ(data))
	require.Equal(t, in, out)
}

func TestUint64RoundTrip(t *testing.T) {
	in := ssz.Uint64(0x0102030405060708)
	data, err := in.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data)

	var out ssz.Uint64
	require.NoError(t, out.UnmarshalSSZ(data))
	require.Equal(t, in, out)
}

func TestUint128RoundTrip(t *testing.T) {
	in := ssz.Uint128{Lo: 0x1122334455667788, Hi: 0x99aabbccddeeff00}
	data, err := in.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Len(t, data, 16)

	var out ssz.Uint128
	require.NoError(t, out.UnmarshalSSZ(data))
	require.Equal(t, in, out)
}

func TestUint256RoundTrip(t *testing.T) {
	var in ssz.Uint256
	in.Int.SetUint64(0xffeeddccbbaa9988)

	data, err := in.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Len(t, data, 32)
	// Little-endian: the low limb's low byte comes first.
	require.Equal(t, byte(0x88), data[0])

	var out ssz.Uint256
	require.NoError(t, out.UnmarshalSSZ(data))
	require.Equal(t, in.Int, out.Int)
}
