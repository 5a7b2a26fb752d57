package ssz

import (
	"github.com/gfx-labs/go-ssz-core/merkle"
)

// Bitlist is the SSZ `Bitlist<N>` type: a variable-length bit sequence
// of at most N bits. The wire encoding packs the payload bits
// little-endian, then appends a trailing delimiter bit (value 1) at
// logical position len and rounds up to a whole byte (spec.md §4.3).
//
// Grounded on github.com/gfx-labs/ssz's flexssz.EncodeBitList /
// DecodeBitList for the overall shape, but implements the canonical
// decode algorithm literally as spec.md §4.3 states it: the teacher's
// version trims trailing zero bytes from the decoded payload, which
// is a convenient but non-canonical shortcut that would silently
// accept encodings spec.md treats as distinct.
type Bitlist struct {
	N      uint64
	bits   []byte // exactly byteLen(length) bytes, no delimiter
	length uint64
}

// NewBitlist allocates an empty Bitlist<n>.
func NewBitlist(n uint64) *Bitlist {
	return &Bitlist{N: n, bits: nil, length: 0}
}

// Len reports the logical bit length.
func (b *Bitlist) Len() uint64 { return b.length }

// Get reports the bit at index i (i < Len()).
func (b *Bitlist) Get(i uint64) bool {
	return b.bits[i/8]&(1<<(i%8)) != 0
}

// Append grows the bitlist by one bit, failing with BoundedError if
// that would exceed N.
func (b *Bitlist) Append(v bool) error {
	if b.length >= b.N {
		return NewInvalidInstanceError(NewBoundedError(b.N, b.length+1))
	}
	if b.length%8 == 0 {
		b.bits = append(b.bits, 0)
	}
	if v {
		b.bits[b.length/8] |= 1 << (b.length % 8)
	}
	b.length++
	return nil
}

func (b *Bitlist) IsVariableSize() bool { return true }
func (b *Bitlist) SizeHint() int        { return 0 }
func (b *Bitlist) IsComposite() bool    { return true }

// ChunkCount is the capacity in chunks, ⌈N/256⌉, used as the
// Merkleization limit (spec.md §4.3).
func (b *Bitlist) ChunkCount() int {
	return int((b.N + 255) / 256)
}

func (b *Bitlist) MarshalSSZTo(dst []byte) ([]byte, error) {
	payloadLen := byteLen(b.length)
	encodedLen := byteLen(b.length + 1)
	out := make([]byte, encodedLen)
	copy(out, b.bits[:payloadLen])
	out[b.length/8] |= 1 << (b.length % 8)
	return append(dst, out...), nil
}

func (b *Bitlist) UnmarshalSSZ(data []byte) error {
	if len(data) == 0 {
		return NewExpectedFurtherInputError(0, 1)
	}
	last := data[len(data)-1]
	if last == 0 {
		return NewInvalidByteError(last)
	}
	h := highestSetBit(last)
	length := uint64(8*(len(data)-1)) + uint64(h)
	if length > b.N {
		return NewInvalidInstanceError(NewBoundedError(b.N, length))
	}

	cleared := make([]byte, len(data))
	copy(cleared, data)
	cleared[len(cleared)-1] &^= 1 << uint(h)

	b.bits = cleared[:byteLen(length)]
	b.length = length
	return nil
}

func (b *Bitlist) HashTreeRoot() ([32]byte, error) {
	packed := merkle.PackBytes(b.bits)
	limit := uint64(b.ChunkCount())
	root, err := merkle.Merkleize(packed, &limit)
	if err != nil {
		return [32]byte{}, err
	}
	return merkle.MixInLength(root, b.length), nil
}

// highestSetBit returns the index (0..7) of the highest set bit in a
// nonzero byte.
func highestSetBit(x byte) int {
	h := 0
	for x > 1 {
		x >>= 1
		h++
	}
	return h
}
