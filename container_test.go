package ssz_test

import (
	"encoding/binary"
	"testing"

	ssz "github.com/gfx-labs/go-ssz-core"
	"github.com/stretchr/testify/require"
)

func buildMixedContainer(t *testing.T) (*ssz.Container, *ssz.Uint16, *ssz.Boolean, *ssz.List[ssz.Uint8, *ssz.Uint8]) {
	t.Helper()
	a := ssz.Uint16(1337)
	b := ssz.Boolean(true)
	c := ssz.NewList[ssz.Uint8, *ssz.Uint8](8)
	c.Elems = []ssz.Uint8{9, 8, 7}

	container, err := ssz.NewContainer(&a, &b, c)
	require.NoError(t, err)
	return container, &a, &b, c
}

func TestContainerMarshalLayout(t *testing.T) {
	container, _, _, _ := buildMixedContainer(t)
	data, err := container.MarshalSSZTo(nil)
	require.NoError(t, err)

	// fixed region: Uint16 (2 bytes) + Boolean (1 byte) + offset (4 bytes) = 7
	require.Equal(t, byte(0x39), data[0])
	require.Equal(t, byte(0x05), data[1])
	require.Equal(t, byte(0x01), data[2])
	offset := binary.LittleEndian.Uint32(data[3:7])
	require.Equal(t, uint32(7), offset)
	require.Equal(t, []byte{9, 8, 7}, data[7:])
}

func TestContainerRoundTrip(t *testing.T) {
	container, _, _, _ := buildMixedContainer(t)
	data, err := container.MarshalSSZTo(nil)
	require.NoError(t, err)

	var a2 ssz.Uint16
	var b2 ssz.Boolean
	c2 := ssz.NewList[ssz.Uint8, *ssz.Uint8](8)
	decoded, err := ssz.NewContainer(&a2, &b2, c2)
	require.NoError(t, err)
	require.NoError(t, decoded.UnmarshalSSZ(data))

	require.Equal(t, ssz.Uint16(1337), a2)
	require.Equal(t, ssz.Boolean(true), b2)
	require.Equal(t, []ssz.Uint8{9, 8, 7}, c2.Elems)
}

func TestContainerUnmarshalRejectsNonIncreasingOffset(t *testing.T) {
	var a ssz.Uint8
	c1 := ssz.NewList[ssz.Uint8, *ssz.Uint8](8)
	c2 := ssz.NewList[ssz.Uint8, *ssz.Uint8](8)
	container, err := ssz.NewContainer(&a, c1, c2)
	require.NoError(t, err)

	// fixed region: Uint8 (1) + offset1 (4) + offset2 (4) = 9 bytes.
	// offset1 = 9, offset2 = 8 (decreasing) is malformed.
	data := make([]byte, 9)
	data[0] = 5
	binary.LittleEndian.PutUint32(data[1:5], 9)
	binary.LittleEndian.PutUint32(data[5:9], 8)

	err = container.UnmarshalSSZ(data)
	require.Error(t, err)
	require.IsType(t, &ssz.OffsetNotIncreasingError{}, err)
}

func TestContainerUnmarshalRejectsTrailingBytesAllFixed(t *testing.T) {
	var a, b ssz.Uint8
	container, err := ssz.NewContainer(&a, &b)
	require.NoError(t, err)

	err = container.UnmarshalSSZ([]byte{1, 2, 3})
	require.Error(t, err)
	require.IsType(t, &ssz.AdditionalInputError{}, err)
}

func TestContainerSingleFieldDelegatesHashTreeRoot(t *testing.T) {
	a := ssz.Uint64(42)
	container, err := ssz.NewContainer(&a)
	require.NoError(t, err)

	containerRoot, err := container.HashTreeRoot()
	require.NoError(t, err)
	fieldRoot, err := a.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, fieldRoot, containerRoot)
}

func TestContainerNewRejectsNoFields(t *testing.T) {
	_, err := ssz.NewContainer()
	require.Error(t, err)
	require.IsType(t, &ssz.InvalidBoundError{}, err)
}

func TestContainerHashTreeRootChangesWithAnyField(t *testing.T) {
	a1 := ssz.Uint16(1)
	b1 := ssz.Boolean(false)
	c1, err := ssz.NewContainer(&a1, &b1)
	require.NoError(t, err)
	root1, err := c1.HashTreeRoot()
	require.NoError(t, err)

	a2 := ssz.Uint16(1)
	b2 := ssz.Boolean(true)
	c2, err := ssz.NewContainer(&a2, &b2)
	require.NoError(t, err)
	root2, err := c2.HashTreeRoot()
	require.NoError(t, err)

	require.NotEqual(t, root1, root2)
}
