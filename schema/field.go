// Package schema is the ordered field-schema representation a derive
// collaborator (struct tags, an IDL, hand-authored Go) would produce
// and hand to the core codec/Merkleizer: a Field tree naming each
// type's shape (basic, vector/list with size or limit, container with
// children, union with variants, or a ref to a named type elsewhere
// in the schema). Generating the concrete Descriptor[S]-constrained
// Go types from a Field tree is the derive layer's job, out of scope
// here; this package only validates that a Field tree is a legal SSZ
// type per spec.md §3.
//
// Grounded on github.com/gfx-labs/ssz's root types.go, generalized to
// validate Union's selector-width and None-placement rules (spec.md
// §3/§4.7), which the teacher's schema never modeled.
package schema

import "fmt"

type TypeName string

const (
	TypeUint8   TypeName = "uint8"
	TypeUint16  TypeName = "uint16"
	TypeUint32  TypeName = "uint32"
	TypeUint64  TypeName = "uint64"
	TypeUint128 TypeName = "uint128"
	TypeUint256 TypeName = "uint256"

	TypeBoolean TypeName = "boolean"

	TypeContainer TypeName = "container"

	TypeVector TypeName = "vector"
	TypeList   TypeName = "list"

	TypeBitVector TypeName = "bitvector"
	TypeBitList   TypeName = "bitlist"

	TypeUnion TypeName = "union"

	// TypeRef is not an SSZ type; it names a reference to a type
	// declared elsewhere in the schema.
	TypeRef TypeName = "ref"
)

// Field describes one node of a schema tree: a named type and, for
// composite types, its children (Vector/List/Container element or
// field types; Union variant types, in tag order).
type Field struct {
	Name string   `json:"name"`
	Type TypeName `json:"type"`

	Size  uint64 `json:"size,omitempty"`
	Limit uint64 `json:"limit,omitempty"`

	Ref      string  `json:"ref,omitempty"`
	Children []Field `json:"children,omitempty"`

	// IsNone marks a Union variant as the unit `None` case. Only
	// legal on Children[0] of a TypeUnion field.
	IsNone bool `json:"is_none,omitempty"`
}

const maxResolveIterations = 1000

// IsVariable reports whether f's encoded length depends on its value
// rather than its type alone (spec.md §4.0/§4.7).
func (f *Field) IsVariable(refs map[string]Field) (bool, error) {
	return isVariable(f, refs, 0)
}

func isVariable(f *Field, refs map[string]Field, depth int) (bool, error) {
	if depth >= maxResolveIterations {
		return false, fmt.Errorf("schema: max resolve depth reached checking IsVariable on %q - possible circular ref", f.Name)
	}

	switch f.Type {
	case TypeList, TypeBitList, TypeUnion:
		return true, nil
	case TypeContainer, TypeVector, TypeBitVector:
		for _, child := range f.Children {
			isVar, err := isVariable(&child, refs, depth+1)
			if err != nil {
				return false, err
			}
			if isVar {
				return true, nil
			}
		}
	case TypeRef:
		if f.Ref == "" {
			return false, fmt.Errorf("schema: field %q has type 'ref' but no ref specified", f.Name)
		}
		refField, ok := refs[f.Ref]
		if !ok {
			return false, fmt.Errorf("schema: ref type %q not found", f.Ref)
		}
		return isVariable(&refField, refs, depth+1)
	}
	return false, nil
}

// IsValid validates f and every descendant against spec.md §3's
// bounds: non-zero Size/Limit where required, at least one Container
// field, 1..128 Union variants with None legal only at variant 0 and
// only when there are at least two variants.
func (f *Field) IsValid(refs map[string]Field) error {
	return isValid(f, refs, 0)
}

func isValid(f *Field, refs map[string]Field, depth int) error {
	if depth >= maxResolveIterations {
		return fmt.Errorf("schema: max resolve depth reached validating %q - possible circular ref", f.Name)
	}
	if f.Name == "" {
		return fmt.Errorf("schema: field name cannot be empty")
	}

	switch f.Type {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeUint128, TypeUint256, TypeBoolean:
		return nil

	case TypeVector, TypeBitVector:
		if f.Size == 0 {
			return fmt.Errorf("schema: field %q of type %q must have non-zero size", f.Name, f.Type)
		}
		if f.Type == TypeVector {
			for i, child := range f.Children {
				if err := isValid(&child, refs, depth+1); err != nil {
					return fmt.Errorf("field %q child[%d]: %w", f.Name, i, err)
				}
			}
		}
		return nil

	case TypeList, TypeBitList:
		if f.Limit == 0 {
			return fmt.Errorf("schema: field %q of type %q must have non-zero limit", f.Name, f.Type)
		}
		if f.Type == TypeList {
			for i, child := range f.Children {
				if err := isValid(&child, refs, depth+1); err != nil {
					return fmt.Errorf("field %q child[%d]: %w", f.Name, i, err)
				}
			}
		}
		return nil

	case TypeContainer:
		if len(f.Children) == 0 {
			return fmt.Errorf("schema: field %q of type 'container' must have at least one field", f.Name)
		}
		for i, child := range f.Children {
			if err := isValid(&child, refs, depth+1); err != nil {
				return fmt.Errorf("field %q child[%d]: %w", f.Name, i, err)
			}
		}
		return nil

	case TypeUnion:
		if err := validateUnionVariants(f); err != nil {
			return err
		}
		for i, child := range f.Children {
			if child.IsNone {
				continue
			}
			if err := isValid(&child, refs, depth+1); err != nil {
				return fmt.Errorf("field %q variant[%d]: %w", f.Name, i, err)
			}
		}
		return nil

	case TypeRef:
		if f.Ref == "" {
			return fmt.Errorf("schema: field %q has type 'ref' but no ref specified", f.Name)
		}
		refField, ok := refs[f.Ref]
		if !ok {
			return fmt.Errorf("schema: field %q references type %q, which is not found", f.Name, f.Ref)
		}
		return isValid(&refField, refs, depth+1)

	default:
		return fmt.Errorf("schema: field %q has unknown type %q", f.Name, f.Type)
	}
}

// validateUnionVariants enforces spec.md §3's union shape: 1..128
// variants, and None legal only as variants[0], requiring >= 2
// variants overall.
func validateUnionVariants(f *Field) error {
	if len(f.Children) == 0 {
		return fmt.Errorf("schema: field %q of type 'union' must have at least one variant", f.Name)
	}
	if len(f.Children) > 128 {
		return fmt.Errorf("schema: field %q of type 'union' has %d variants, exceeding the 128-tag limit", f.Name, len(f.Children))
	}
	if f.Children[0].IsNone && len(f.Children) < 2 {
		return fmt.Errorf("schema: field %q declares a None variant but has no other variant", f.Name)
	}
	for i, child := range f.Children {
		if child.IsNone && i != 0 {
			return fmt.Errorf("schema: field %q variant[%d] is marked None, but None is only legal at variant 0", f.Name, i)
		}
	}
	return nil
}
