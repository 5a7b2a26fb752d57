package ssz

import "github.com/gfx-labs/go-ssz-core/merkle"

// List is the SSZ `List<T,N>` type: a variable-length homogeneous
// sequence of at most N elements (spec.md §4.5). Its wire format
// matches Vector with the actual element count k standing in for N;
// an empty list encodes as zero bytes. Its Merkleization limit is
// the declared capacity N expressed in chunks (see ChunkCount),
// regardless of k, with the current length k mixed in afterward.
type List[S any, T Descriptor[S]] struct {
	N     uint64
	Elems []S
}

// NewList allocates an empty List<T,n>.
func NewList[S any, T Descriptor[S]](n uint64) *List[S, T] {
	return &List[S, T]{N: n}
}

func (l *List[S, T]) elemSSZType() T {
	var zero S
	return T(&zero)
}

func (l *List[S, T]) IsVariableSize() bool { return true }
func (l *List[S, T]) SizeHint() int        { return 0 }
func (l *List[S, T]) IsComposite() bool    { return true }

// ChunkCount is the capacity in chunks, used as the Merkleization
// limit: N for composite elements, ⌈N × T.size_hint / 32⌉ for basic
// elements (spec.md §4.5).
func (l *List[S, T]) ChunkCount() int {
	elem := l.elemSSZType()
	if elem.IsComposite() {
		return int(l.N)
	}
	return int((l.N*uint64(elem.SizeHint()) + 31) / 32)
}

func (l *List[S, T]) MarshalSSZTo(dst []byte) ([]byte, error) {
	if uint64(len(l.Elems)) > l.N {
		return nil, NewInvalidInstanceError(NewBoundedError(l.N, uint64(len(l.Elems))))
	}
	buf, err := serializeHomogeneous[S, T](l.Elems, l.elemSSZType().IsVariableSize())
	if err != nil {
		return nil, err
	}
	return append(dst, buf...), nil
}

func (l *List[S, T]) UnmarshalSSZ(data []byte) error {
	elem := l.elemSSZType()
	var values []S
	var err error
	if elem.IsVariableSize() {
		values, err = deserializeHomogeneousVariable[S, T](data)
	} else {
		values, err = deserializeHomogeneousFixed[S, T](data, elem.SizeHint())
	}
	if err != nil {
		return err
	}
	if uint64(len(values)) > l.N {
		return NewInvalidInstanceError(NewBoundedError(l.N, uint64(len(values))))
	}
	l.Elems = values
	return nil
}

func (l *List[S, T]) HashTreeRoot() ([32]byte, error) {
	elem := l.elemSSZType()
	limit := uint64(l.ChunkCount())

	var root [32]byte
	var err error
	if elem.IsComposite() {
		roots := make([]byte, 0, len(l.Elems)*32)
		for i := range l.Elems {
			r, err := T(&l.Elems[i]).HashTreeRoot()
			if err != nil {
				return [32]byte{}, err
			}
			roots = append(roots, r[:]...)
		}
		root, err = merkle.Merkleize(roots, &limit)
	} else {
		var packed []byte
		packed, err = packBasics[S, T](l.Elems)
		if err != nil {
			return [32]byte{}, NewSerializationError(err)
		}
		root, err = merkle.Merkleize(packed, &limit)
	}
	if err != nil {
		return [32]byte{}, err
	}
	return merkle.MixInLength(root, uint64(len(l.Elems))), nil
}
