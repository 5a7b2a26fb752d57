// Package gen reads a YAML schema describing a set of named SSZ types
// and prints the corresponding plain Go struct skeletons. It sits at
// the derive-collaborator boundary this module's core stops short of:
// it emits the data shape a generator would then wire up with
// MarshalSSZTo/UnmarshalSSZ/HashTreeRoot bodies (calling into the
// core types in this module), but does not generate those bodies
// itself — that full reflect/codegen layer is out of scope here.
//
// Grounded on github.com/gfx-labs/ssz's genssz package (ReadSchemaFromBytes,
// Schema/World), adapted to schema.Field instead of a duplicate Field type.
package gen

import (
	"fmt"

	"github.com/gfx-labs/go-ssz-core/schema"
	"sigs.k8s.io/yaml"
)

// Schema is a named collection of top-level struct declarations, as
// read from a YAML schema file.
type Schema struct {
	Package string         `yaml:"package"`
	Structs []schema.Field `yaml:"structs"`
}

// World is the set of named types resolved from a Schema, keyed by
// name, for reference resolution during generation.
type World struct {
	Types map[string]Type
}

// Type is one resolved named type: its own declared shape, plus its
// Ref target if it is a ref.
type Type struct {
	Name string
	Type schema.TypeName
	Ref  string

	Variable *VariableType
	Fixed    *FixedType
}

type VariableType struct {
	Limit uint64
}

type FixedType struct {
	Size uint64
}

// ReadSchemaFromBytes parses a YAML schema document.
func ReadSchemaFromBytes(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("gen: unmarshal schema: %w", err)
	}
	return &s, nil
}

// ParseSchemaToWorld resolves a Schema's top-level structs into a
// World, validating each against schema.Field's rules along the way.
func ParseSchemaToWorld(s *Schema) (*World, error) {
	refs := make(map[string]schema.Field, len(s.Structs))
	for _, f := range s.Structs {
		refs[f.Name] = f
	}

	world := &World{Types: make(map[string]Type, len(s.Structs))}
	for _, f := range s.Structs {
		if err := f.IsValid(refs); err != nil {
			return nil, fmt.Errorf("gen: struct %q: %w", f.Name, err)
		}

		typ := Type{Name: f.Name, Type: f.Type}
		switch f.Type {
		case schema.TypeRef:
			typ.Ref = f.Ref
		case schema.TypeList, schema.TypeBitList:
			typ.Variable = &VariableType{Limit: f.Limit}
		case schema.TypeVector, schema.TypeBitVector:
			typ.Fixed = &FixedType{Size: f.Size}
		}
		world.Types[f.Name] = typ
	}
	return world, nil
}
