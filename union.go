package ssz

import "github.com/gfx-labs/go-ssz-core/merkle"

// None is the unit variant shared by every Option<T>: it encodes to a
// single zero octet with no payload and contributes a zero root to
// its enclosing union (spec.md §4.7).
var None SSZType = noneVariant{}

type noneVariant struct{}

func (noneVariant) IsVariableSize() bool { return false }
func (noneVariant) SizeHint() int        { return 0 }
func (noneVariant) IsComposite() bool    { return false }
func (noneVariant) ChunkCount() int      { return 0 }

func (noneVariant) MarshalSSZTo(dst []byte) ([]byte, error) { return dst, nil }

func (noneVariant) UnmarshalSSZ(data []byte) error {
	if len(data) != 0 {
		return NewAdditionalInputError(len(data), 0)
	}
	return nil
}

func (noneVariant) HashTreeRoot() ([32]byte, error) { return [32]byte{}, nil }

// Union is the SSZ tagged-sum type: a one-octet selector followed by
// the selected variant's encoding, if it has one (spec.md §4.7).
// Variants are indexed by declaration order; None, if present, must
// occupy index 0 and the union must then have at least two variants.
type Union struct {
	Selector uint8
	Variants []SSZType
}

// NewUnion builds a Union over variants in declaration order. Per
// spec.md §3: 1..=128 variants, tags 0..127; None may appear only as
// variants[0], and only when len(variants) >= 2.
func NewUnion(variants ...SSZType) (*Union, error) {
	if len(variants) == 0 {
		return nil, NewInvalidBoundError(0, "Union must have at least one variant")
	}
	if len(variants) > 128 {
		return nil, NewInvalidBoundError(uint64(len(variants)), "Union may have at most 128 variants")
	}
	if _, ok := variants[0].(noneVariant); ok && len(variants) < 2 {
		return nil, NewInvalidBoundError(uint64(len(variants)), "a Union with a None variant must have at least one other variant")
	}
	for i := 1; i < len(variants); i++ {
		if _, ok := variants[i].(noneVariant); ok {
			return nil, NewInvalidBoundError(uint64(i), "None is only permitted as variant 0")
		}
	}
	return &Union{Variants: variants}, nil
}

// NewOption builds the Option<T> shorthand union {None, Some(T)},
// sharing the same Union implementation rather than a distinct type
// (spec.md §9). A nil value constructs None; otherwise Some(*value).
func NewOption[S any, T Descriptor[S]](value *S) (*Union, error) {
	var payload S
	if value != nil {
		payload = *value
	}
	u, err := NewUnion(None, T(&payload))
	if err != nil {
		return nil, err
	}
	if value != nil {
		u.Selector = 1
	}
	return u, nil
}

func (u *Union) Active() SSZType { return u.Variants[u.Selector] }

// Select switches the active variant. Fails with InvalidTypeError if
// tag names no declared variant.
func (u *Union) Select(tag uint8) error {
	if int(tag) >= len(u.Variants) {
		return NewInvalidTypeError(NewInvalidBoundError(uint64(tag), "unknown union tag"))
	}
	u.Selector = tag
	return nil
}

func (u *Union) IsVariableSize() bool { return true }
func (u *Union) SizeHint() int        { return 0 }
func (u *Union) IsComposite() bool    { return true }
func (u *Union) ChunkCount() int      { return 1 }

func (u *Union) MarshalSSZTo(dst []byte) ([]byte, error) {
	if int(u.Selector) >= len(u.Variants) {
		return nil, NewInvalidTypeError(NewInvalidBoundError(uint64(u.Selector), "unknown union tag"))
	}
	dst = append(dst, u.Selector)
	return u.Variants[u.Selector].MarshalSSZTo(dst)
}

func (u *Union) UnmarshalSSZ(data []byte) error {
	if len(data) < 1 {
		return NewExpectedFurtherInputError(len(data), 1)
	}
	tag := data[0]
	if tag > 127 || int(tag) >= len(u.Variants) {
		return NewInvalidByteError(tag)
	}
	if err := u.Variants[tag].UnmarshalSSZ(data[1:]); err != nil {
		return err
	}
	u.Selector = tag
	return nil
}

func (u *Union) HashTreeRoot() ([32]byte, error) {
	root, err := u.Active().HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return merkle.MixInSelector(root, u.Selector), nil
}
