package ssz

import "github.com/gfx-labs/go-ssz-core/merkle"

// Vector is the SSZ `Vector<T,N>` type: a fixed-length homogeneous
// sequence of exactly N elements (spec.md §4.4). S is the element's
// storage type; T is its pointer-receiver SSZType implementation
// (the Descriptor[S] pattern), letting Vector stay generic without
// reflection.
type Vector[S any, T Descriptor[S]] struct {
	N     uint64
	Elems []S
}

// NewVector allocates a zero-valued Vector<T,n>. n must be >= 1
// (spec.md §3 "Vector<_,0> is illegal").
func NewVector[S any, T Descriptor[S]](n uint64) (*Vector[S, T], error) {
	if n == 0 {
		return nil, NewInvalidBoundError(0, "Vector length must be >= 1")
	}
	return &Vector[S, T]{N: n, Elems: make([]S, n)}, nil
}

func (v *Vector[S, T]) elemSSZType() T {
	var zero S
	return T(&zero)
}

func (v *Vector[S, T]) IsVariableSize() bool {
	return v.elemSSZType().IsVariableSize()
}

func (v *Vector[S, T]) SizeHint() int {
	elem := v.elemSSZType()
	if elem.IsVariableSize() {
		return 0
	}
	return elem.SizeHint() * int(v.N)
}

func (v *Vector[S, T]) IsComposite() bool { return true }

func (v *Vector[S, T]) ChunkCount() int {
	elem := v.elemSSZType()
	if elem.IsComposite() {
		return int(v.N)
	}
	return int((v.N*uint64(elem.SizeHint()) + 31) / 32)
}

func (v *Vector[S, T]) MarshalSSZTo(dst []byte) ([]byte, error) {
	if uint64(len(v.Elems)) != v.N {
		return nil, NewExactError(v.N, uint64(len(v.Elems)))
	}
	buf, err := serializeHomogeneous[S, T](v.Elems, v.elemSSZType().IsVariableSize())
	if err != nil {
		return nil, err
	}
	return append(dst, buf...), nil
}

func (v *Vector[S, T]) UnmarshalSSZ(data []byte) error {
	elem := v.elemSSZType()
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
	if uint64(len(values)) != v.N {
		return NewInvalidInstanceError(NewExactError(v.N, uint64(len(values))))
	}
	v.Elems = values
	return nil
}

func (v *Vector[S, T]) HashTreeRoot() ([32]byte, error) {
	elem := v.elemSSZType()
	limit := uint64(v.ChunkCount())

	if elem.IsComposite() {
		roots := make([]byte, 0, len(v.Elems)*32)
		for i := range v.Elems {
			r, err := T(&v.Elems[i]).HashTreeRoot()
			if err != nil {
				return [32]byte{}, err
			}
			roots = append(roots, r[:]...)
		}
		return merkle.Merkleize(roots, &limit)
	}

	packed, err := packBasics[S, T](v.Elems)
	if err != nil {
		return [32]byte{}, NewSerializationError(err)
	}
	return merkle.Merkleize(packed, &limit)
}
