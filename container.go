package ssz

import (
	"encoding/binary"

	"github.com/gfx-labs/go-ssz-core/merkle"
)

// Container is the SSZ `Container{f1:T1, ..., fk:Tk}` type: an
// ordered heterogeneous record (spec.md §4.6). Fields are supplied as
// already-constructed SSZType values (typically pointers into a
// caller-owned struct), so Container never needs reflection to reach
// a field's storage.
//
// A Container with exactly one field delegates its hash-tree-root to
// that field's root with no extra Merkle layer: SSZ has no notion of
// a single-field "newtype" wrapper, so a 1-field Container is
// indistinguishable from its field at the tree-root level.
type Container struct {
	Fields []SSZType
}

// NewContainer builds a Container over fields in declaration order.
// Containers must have at least one field (spec.md §3).
func NewContainer(fields ...SSZType) (*Container, error) {
	if len(fields) == 0 {
		return nil, NewInvalidBoundError(0, "Container must have at least one field")
	}
	return &Container{Fields: fields}, nil
}

func (c *Container) IsVariableSize() bool {
	for _, f := range c.Fields {
		if f.IsVariableSize() {
			return true
		}
	}
	return false
}

func (c *Container) SizeHint() int {
	if c.IsVariableSize() {
		return 0
	}
	total := 0
	for _, f := range c.Fields {
		total += f.SizeHint()
	}
	return total
}

func (c *Container) IsComposite() bool { return true }
func (c *Container) ChunkCount() int   { return len(c.Fields) }

// fixedSlotWidth is a field's slot width in the fixed region: its own
// size_hint when fixed-size, or 4 (an offset) when variable-size.
func fixedSlotWidth(f SSZType) int {
	if f.IsVariableSize() {
		return 4
	}
	return f.SizeHint()
}

func (c *Container) MarshalSSZTo(dst []byte) ([]byte, error) {
	fixedWidth := 0
	for _, f := range c.Fields {
		fixedWidth += fixedSlotWidth(f)
	}

	fixedRegion := make([]byte, 0, fixedWidth)
	var variableRegion []byte
	for _, f := range c.Fields {
		if f.IsVariableSize() {
			offset := uint32(fixedWidth + len(variableRegion))
			fixedRegion = binary.LittleEndian.AppendUint32(fixedRegion, offset)
			var err error
			variableRegion, err = f.MarshalSSZTo(variableRegion)
			if err != nil {
				return nil, err
			}
		} else {
			var err error
			fixedRegion, err = f.MarshalSSZTo(fixedRegion)
			if err != nil {
				return nil, err
			}
		}
	}

	dst = append(dst, fixedRegion...)
	dst = append(dst, variableRegion...)
	return dst, nil
}

func (c *Container) UnmarshalSSZ(data []byte) error {
	type variableField struct {
		index  int
		offset uint32
	}

	var variables []variableField
	start := 0
	for i, f := range c.Fields {
		if f.IsVariableSize() {
			if start+4 > len(data) {
				return NewExpectedFurtherInputError(len(data), start+4)
			}
			offset := binary.LittleEndian.Uint32(data[start : start+4])
			if len(variables) > 0 {
				prev := variables[len(variables)-1].offset
				if offset < prev {
					return NewOffsetNotIncreasingError(prev, offset)
				}
			}
			variables = append(variables, variableField{index: i, offset: offset})
			start += 4
		} else {
			width := f.SizeHint()
			if start+width > len(data) {
				return NewExpectedFurtherInputError(len(data), start+width)
			}
			if err := f.UnmarshalSSZ(data[start : start+width]); err != nil {
				return err
			}
			start += width
		}
	}

	if len(variables) == 0 {
		if start != len(data) {
			return NewAdditionalInputError(len(data), start)
		}
		return nil
	}

	if first := variables[0].offset; int(first) != start {
		return NewOffsetNotIncreasingError(uint32(start), first)
	}

	for j, vf := range variables {
		lo := vf.offset
		var hi uint32
		if j+1 < len(variables) {
			hi = variables[j+1].offset
		} else {
			hi = uint32(len(data))
		}
		if hi < lo || int(hi) > len(data) {
			return NewAdditionalInputError(len(data), int(hi))
		}
		if err := c.Fields[vf.index].UnmarshalSSZ(data[lo:hi]); err != nil {
			return err
		}
	}

	return nil
}

func (c *Container) HashTreeRoot() ([32]byte, error) {
	if len(c.Fields) == 1 {
		return c.Fields[0].HashTreeRoot()
	}
	roots := make([]byte, 0, len(c.Fields)*32)
	for _, f := range c.Fields {
		r, err := f.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		roots = append(roots, r[:]...)
	}
	return merkle.Merkleize(roots, nil)
}
