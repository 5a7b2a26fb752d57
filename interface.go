package ssz

// SSZType is the capability set every SSZ-typed value in this package
// implements: classification (IsVariableSize, SizeHint, IsComposite,
// ChunkCount), the codec (MarshalSSZTo, UnmarshalSSZ), and
// Merkleization (HashTreeRoot). Composites delegate to their element
// types purely through this interface, so the codec and merkleizer
// never enumerate concrete types.
type SSZType interface {
	// IsVariableSize reports whether the encoded length of this type
	// depends on the value rather than the type alone.
	IsVariableSize() bool

	// SizeHint returns the fixed encoded length in bytes, or 0 as the
	// sentinel for variable-size types.
	SizeHint() int

	// IsComposite reports whether this type is a composite (bit
	// container, vector, list, container, union) as opposed to a basic
	// type (unsigned integer, boolean).
	IsComposite() bool

	// ChunkCount returns the number of 32-byte chunks this type's own
	// hash-tree-root is computed over; for lists and bitlists it is
	// the capacity in chunks, used as the Merkleization limit.
	ChunkCount() int

	// MarshalSSZTo appends this value's SSZ encoding to dst and
	// returns the extended slice.
	MarshalSSZTo(dst []byte) ([]byte, error)

	// UnmarshalSSZ decodes data into this value. data must hold
	// exactly this value's encoding; trailing or missing bytes are
	// errors.
	UnmarshalSSZ(data []byte) error

	// HashTreeRoot computes this value's Merkle root.
	HashTreeRoot() ([32]byte, error)
}

// Descriptor constrains a pointer type T to implement SSZType over its
// pointee S, letting composites be generic over the underlying storage
// type (S, used for slice/array element storage) while dispatching
// through the pointer-receiver methods that implement the codec.
type Descriptor[S any] interface {
	*S
	SSZType
}

// HashableSSZ is the narrower hashing capability that fastssz-generated
// types also have. Nothing in this package consumes it: Container
// fields must implement the full SSZType, so a type with only
// HashTreeRoot is not accepted as a field.
type HashableSSZ interface {
	HashTreeRoot() ([32]byte, error)
}

// Prehash wraps an already-computed root so it can stand in for a
// field whose tree root was computed out of band (e.g. cached).
type Prehash [32]byte

func (p *Prehash) HashTreeRoot() ([32]byte, error) {
	return [32]byte(*p), nil
}

func (p *Prehash) IsVariableSize() bool { return false }
func (p *Prehash) SizeHint() int        { return 32 }
func (p *Prehash) IsComposite() bool    { return false }
func (p *Prehash) ChunkCount() int      { return 1 }

func (p *Prehash) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, p[:]...), nil
}

func (p *Prehash) UnmarshalSSZ(data []byte) error {
	if len(data) != 32 {
		return NewExactError(32, uint64(len(data)))
	}
	copy(p[:], data)
	return nil
}
