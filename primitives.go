package ssz

import (
	"encoding/binary"

	"github.com/gfx-labs/go-ssz-core/merkle"
	"github.com/holiman/uint256"
)

// Boolean is the SSZ `boolean` type: a single octet, 0x00 for false and
// 0x01 for true. Any other octet is InvalidByteError on decode
// (spec.md §4.1).
type Boolean bool

func (b *Boolean) IsVariableSize() bool { return false }
func (b *Boolean) SizeHint() int        { return 1 }
func (b *Boolean) IsComposite() bool    { return false }
func (b *Boolean) ChunkCount() int      { return 1 }

func (b *Boolean) MarshalSSZTo(dst []byte) ([]byte, error) {
	if *b {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func (b *Boolean) UnmarshalSSZ(data []byte) error {
	if len(data) < 1 {
		return NewExpectedFurtherInputError(len(data), 1)
	}
	if len(data) > 1 {
		return NewAdditionalInputError(len(data), 1)
	}
	switch data[0] {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return NewInvalidByteError(data[0])
	}
	return nil
}

func (b *Boolean) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	if *b {
		out[0] = 1
	}
	return out, nil
}

// uintSize reports the byte width of an unsigned-integer SSZ type
// given its bit width.
func uintSize(bits int) int { return bits / 8 }

// Uint8 is the SSZ `uint8` type.
type Uint8 uint8

func (u *Uint8) IsVariableSize() bool { return false }
func (u *Uint8) SizeHint() int        { return 1 }
func (u *Uint8) IsComposite() bool    { return false }
func (u *Uint8) ChunkCount() int      { return 1 }

func (u *Uint8) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, byte(*u)), nil
}

func (u *Uint8) UnmarshalSSZ(data []byte) error {
	if len(data) < 1 {
		return NewExpectedFurtherInputError(len(data), 1)
	}
	if len(data) > 1 {
		return NewAdditionalInputError(len(data), 1)
	}
	*u = Uint8(data[0])
	return nil
}

func (u *Uint8) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	out[0] = byte(*u)
	return out, nil
}

// Uint16 is the SSZ `uint16` type, little-endian on the wire.
type Uint16 uint16

func (u *Uint16) IsVariableSize() bool { return false }
func (u *Uint16) SizeHint() int        { return 2 }
func (u *Uint16) IsComposite() bool    { return false }
func (u *Uint16) ChunkCount() int      { return 1 }

func (u *Uint16) MarshalSSZTo(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint16(dst, uint16(*u)), nil
}

func (u *Uint16) UnmarshalSSZ(data []byte) error {
	if len(data) < 2 {
		return NewExpectedFurtherInputError(len(data), 2)
	}
	if len(data) > 2 {
		return NewAdditionalInputError(len(data), 2)
	}
	*u = Uint16(Uint16FromBytes(data))
	return nil
}

func (u *Uint16) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	binary.LittleEndian.PutUint16(out[:2], uint16(*u))
	return out, nil
}

// Uint32 is the SSZ `uint32` type, little-endian on the wire.
type Uint32 uint32

func (u *Uint32) IsVariableSize() bool { return false }
func (u *Uint32) SizeHint() int        { return 4 }
func (u *Uint32) IsComposite() bool    { return false }
func (u *Uint32) ChunkCount() int      { return 1 }

func (u *Uint32) MarshalSSZTo(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(dst, uint32(*u)), nil
}

func (u *Uint32) UnmarshalSSZ(data []byte) error {
	if len(data) < 4 {
		return NewExpectedFurtherInputError(len(data), 4)
	}
	if len(data) > 4 {
		return NewAdditionalInputError(len(data), 4)
	}
	*u = Uint32(Uint32FromBytes(data))
	return nil
}

func (u *Uint32) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	binary.LittleEndian.PutUint32(out[:4], uint32(*u))
	return out, nil
}

// Uint64 is the SSZ `uint64` type, little-endian on the wire.
type Uint64 uint64

func (u *Uint64) IsVariableSize() bool { return false }
func (u *Uint64) SizeHint() int        { return 8 }
func (u *Uint64) IsComposite() bool    { return false }
func (u *Uint64) ChunkCount() int      { return 1 }

func (u *Uint64) MarshalSSZTo(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, uint64(*u)), nil
}

func (u *Uint64) UnmarshalSSZ(data []byte) error {
	if len(data) < 8 {
		return NewExpectedFurtherInputError(len(data), 8)
	}
	if len(data) > 8 {
		return NewAdditionalInputError(len(data), 8)
	}
	*u = Uint64(Uint64FromBytes(data))
	return nil
}

func (u *Uint64) HashTreeRoot() ([32]byte, error) {
	// Grounded on github.com/gfx-labs/ssz merkle_tree.Uint64Root.
	var out [32]byte
	binary.LittleEndian.PutUint64(out[:8], uint64(*u))
	return out, nil
}

// Uint128 is the SSZ `uint128` type, carried as two 64-bit limbs: Lo
// holds the low 64 bits and Hi the high 64 bits.
type Uint128 struct {
	Lo, Hi uint64
}

func (u *Uint128) IsVariableSize() bool { return false }
func (u *Uint128) SizeHint() int        { return 16 }
func (u *Uint128) IsComposite() bool    { return false }
func (u *Uint128) ChunkCount() int      { return 1 }

func (u *Uint128) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint64(dst, u.Lo)
	dst = binary.LittleEndian.AppendUint64(dst, u.Hi)
	return dst, nil
}

func (u *Uint128) UnmarshalSSZ(data []byte) error {
	if len(data) < 16 {
		return NewExpectedFurtherInputError(len(data), 16)
	}
	if len(data) > 16 {
		return NewAdditionalInputError(len(data), 16)
	}
	u.Lo = binary.LittleEndian.Uint64(data[:8])
	u.Hi = binary.LittleEndian.Uint64(data[8:16])
	return nil
}

func (u *Uint128) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	binary.LittleEndian.PutUint64(out[:8], u.Lo)
	binary.LittleEndian.PutUint64(out[8:16], u.Hi)
	return out, nil
}

// Uint256 is the SSZ `uint256` type, a 32-byte little-endian value
// backed by a uint256.Int value. Its hash-tree-root is its encoding as-is:
// one chunk, zero bytes beyond the 32 octets already filling it
// (spec.md §4.1).
type Uint256 struct {
	Int uint256.Int
}

func (u *Uint256) IsVariableSize() bool { return false }
func (u *Uint256) SizeHint() int        { return 32 }
func (u *Uint256) IsComposite() bool    { return false }
func (u *Uint256) ChunkCount() int      { return 1 }

func (u *Uint256) MarshalSSZTo(dst []byte) ([]byte, error) {
	be := u.Int.Bytes32()
	// uint256.Int.Bytes32 is big-endian; SSZ wants little-endian.
	reverse32(&be)
	return append(dst, be[:]...), nil
}

func (u *Uint256) UnmarshalSSZ(data []byte) error {
	if len(data) < 32 {
		return NewExpectedFurtherInputError(len(data), 32)
	}
	if len(data) > 32 {
		return NewAdditionalInputError(len(data), 32)
	}
	var be [32]byte
	copy(be[:], data)
	reverse32(&be)
	u.Int.SetBytes(be[:])
	return nil
}

func (u *Uint256) HashTreeRoot() ([32]byte, error) {
	out := u.Int.Bytes32()
	reverse32(&out)
	return out, nil
}

func reverse32(b *[32]byte) {
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// packBasics concatenates the little-endian encodings of a sequence of
// basic values and zero-pads to a chunk boundary, per spec.md §4.9
// "Pack".
func packBasics[S any, T Descriptor[S]](values []S) ([]byte, error) {
	var buf []byte
	for i := range values {
		var err error
		buf, err = T(&values[i]).MarshalSSZTo(buf)
		if err != nil {
			return nil, err
		}
	}
	return merkle.PackBytes(buf), nil
}
