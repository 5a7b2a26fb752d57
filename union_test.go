package ssz_test

import (
	"testing"

	ssz "github.com/gfx-labs/go-ssz-core"
	"github.com/stretchr/testify/require"
)

func TestOptionSomeMarshal(t *testing.T) {
	v := ssz.Uint8(12)
	opt, err := ssz.NewOption[ssz.Uint8, *ssz.Uint8](&v)
	require.NoError(t, err)

	data, err := opt.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x0c}, data)
}

func TestOptionNoneMarshal(t *testing.T) {
	opt, err := ssz.NewOption[ssz.Uint8, *ssz.Uint8](nil)
	require.NoError(t, err)

	data, err := opt.MarshalSSZTo(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, data)
}

func TestOptionNoneUnmarshalRejectsTrailingInput(t *testing.T) {
	opt, err := ssz.NewOption[ssz.Uint8, *ssz.Uint8](nil)
	require.NoError(t, err)

	err = opt.UnmarshalSSZ([]byte{0x00, 123})
	require.Error(t, err)
	require.IsType(t, &ssz.AdditionalInputError{}, err)
}

func TestOptionRoundTrip(t *testing.T) {
	v := ssz.Uint8(200)
	some, err := ssz.NewOption[ssz.Uint8, *ssz.Uint8](&v)
	require.NoError(t, err)

	data, err := some.MarshalSSZTo(nil)
	require.NoError(t, err)

	decoded, err := ssz.NewOption[ssz.Uint8, *ssz.Uint8](nil)
	require.NoError(t, err)
	require.NoError(t, decoded.UnmarshalSSZ(data))
	require.Equal(t, uint8(1), decoded.Selector)
	require.Equal(t, v, *decoded.Active().(*ssz.Uint8))
}

func TestUnionRejectsTooManyVariants(t *testing.T) {
	variants := make([]ssz.SSZType, 129)
	for i := range variants {
		var u ssz.Uint8
		variants[i] = &u
	}
	_, err := ssz.NewUnion(variants...)
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidBoundError{}, err)
}

func TestUnionRejectsNoneOutsideIndexZero(t *testing.T) {
	var u ssz.Uint8
	_, err := ssz.NewUnion(&u, ssz.None)
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidBoundError{}, err)
}

func TestUnionRejectsSoleNoneVariant(t *testing.T) {
	_, err := ssz.NewUnion(ssz.None)
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidBoundError{}, err)
}

func TestUnionHashTreeRootMixesInSelector(t *testing.T) {
	var a, b ssz.Uint64 = 7, 7
	u, err := ssz.NewUnion(&a, &b)
	require.NoError(t, err)

	u.Selector = 0
	rootA, err := u.HashTreeRoot()
	require.NoError(t, err)

	u.Selector = 1
	rootB, err := u.HashTreeRoot()
	require.NoError(t, err)

	require.NotEqual(t, rootA, rootB, "identical payloads under different selectors must mix in differently")
}

func TestUnionUnmarshalRejectsUnknownSelector(t *testing.T) {
	var a ssz.Uint8
	u, err := ssz.NewUnion(&a)
	require.NoError(t, err)

	err = u.UnmarshalSSZ([]byte{5, 1})
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidByteError{}, err)
}
