package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/gfx-labs/go-ssz-core/schema"
)

const corePkg = "github.com/gfx-labs/go-ssz-core"

// GenerateCode renders one Go struct skeleton per container in s,
// using this module's core types (Vector, List, Bitvector, Bitlist,
// Union) for every field. The emitted file compiles as plain data
// declarations; it is the generator's job, not this function's, to
// also emit the MarshalSSZTo/UnmarshalSSZ/HashTreeRoot bodies that
// would make each struct implement SSZType. A field declared as an
// inline container (rather than a ref) is typed as a pointer to a
// struct named after the field, which GenerateCode does not declare.
func GenerateCode(world *World, s *Schema) (*jen.File, error) {
	if s.Package == "" {
		return nil, fmt.Errorf("gen: schema has no package name")
	}

	f := jen.NewFile(s.Package)
	f.HeaderComment("Code generated from an SSZ schema. DO NOT EDIT.")

	for _, field := range s.Structs {
		if field.Type != schema.TypeContainer {
			f.Commentf("%s is declared as %q; see the schema for its shape.", field.Name, field.Type)
			continue
		}
		stmt, err := containerStruct(field)
		if err != nil {
			return nil, fmt.Errorf("gen: struct %q: %w", field.Name, err)
		}
		f.Add(stmt)
	}
	return f, nil
}

func containerStruct(field schema.Field) (jen.Code, error) {
	fields := make([]jen.Code, 0, len(field.Children))
	for _, child := range field.Children {
		typ, err := fieldGoType(child)
		if err != nil {
			return nil, err
		}
		fields = append(fields, jen.Id(exportedName(child.Name)).Add(typ))
	}
	return jen.Type().Id(exportedName(field.Name)).Struct(fields...), nil
}

// fieldGoType maps a schema.Field to the Go type this module's core
// uses to represent it.
func fieldGoType(field schema.Field) (*jen.Statement, error) {
	switch field.Type {
	case schema.TypeUint8:
		return jen.Qual(corePkg, "Uint8"), nil
	case schema.TypeUint16:
		return jen.Qual(corePkg, "Uint16"), nil
	case schema.TypeUint32:
		return jen.Qual(corePkg, "Uint32"), nil
	case schema.TypeUint64:
		return jen.Qual(corePkg, "Uint64"), nil
	case schema.TypeUint128:
		return jen.Qual(corePkg, "Uint128"), nil
	case schema.TypeUint256:
		return jen.Qual(corePkg, "Uint256"), nil
	case schema.TypeBoolean:
		return jen.Qual(corePkg, "Boolean"), nil
	case schema.TypeBitVector:
		return jen.Op("*").Qual(corePkg, "Bitvector"), nil
	case schema.TypeBitList:
		return jen.Op("*").Qual(corePkg, "Bitlist"), nil
	case schema.TypeUnion:
		return jen.Op("*").Qual(corePkg, "Union"), nil
	case schema.TypeVector:
		if len(field.Children) != 1 {
			return nil, fmt.Errorf("vector field %q must declare exactly one element type", field.Name)
		}
		storage, err := elementStorageGoType(field.Children[0])
		if err != nil {
			return nil, fmt.Errorf("vector field %q: %w", field.Name, err)
		}
		return jen.Op("*").Qual(corePkg, "Vector").Types(storage.Clone(), jen.Op("*").Add(storage)), nil
	case schema.TypeList:
		if len(field.Children) != 1 {
			return nil, fmt.Errorf("list field %q must declare exactly one element type", field.Name)
		}
		storage, err := elementStorageGoType(field.Children[0])
		if err != nil {
			return nil, fmt.Errorf("list field %q: %w", field.Name, err)
		}
		return jen.Op("*").Qual(corePkg, "List").Types(storage.Clone(), jen.Op("*").Add(storage)), nil
	case schema.TypeContainer:
		return jen.Op("*").Id(exportedName(field.Name)), nil
	case schema.TypeRef:
		return jen.Op("*").Id(exportedName(field.Ref)), nil
	default:
		return nil, fmt.Errorf("field %q has unsupported type %q", field.Name, field.Type)
	}
}

// elementStorageGoType maps a schema.Field to the value-storage type
// S that instantiates Vector[S,T]/List[S,T] (spec.md's Descriptor[S]
// pattern: *S must implement SSZType). Nested Vector/List/Union
// elements aren't supported by this generator — S would need to be
// one of this module's own generic instantiations, which jennifer
// would have to name explicitly; a real derive layer would handle
// that, this demo generator does not.
func elementStorageGoType(field schema.Field) (*jen.Statement, error) {
	switch field.Type {
	case schema.TypeUint8:
		return jen.Qual(corePkg, "Uint8"), nil
	case schema.TypeUint16:
		return jen.Qual(corePkg, "Uint16"), nil
	case schema.TypeUint32:
		return jen.Qual(corePkg, "Uint32"), nil
	case schema.TypeUint64:
		return jen.Qual(corePkg, "Uint64"), nil
	case schema.TypeUint128:
		return jen.Qual(corePkg, "Uint128"), nil
	case schema.TypeUint256:
		return jen.Qual(corePkg, "Uint256"), nil
	case schema.TypeBoolean:
		return jen.Qual(corePkg, "Boolean"), nil
	case schema.TypeBitVector:
		return jen.Qual(corePkg, "Bitvector"), nil
	case schema.TypeBitList:
		return jen.Qual(corePkg, "Bitlist"), nil
	case schema.TypeContainer:
		return jen.Id(exportedName(field.Name)), nil
	case schema.TypeRef:
		return jen.Id(exportedName(field.Ref)), nil
	default:
		return nil, fmt.Errorf("field %q of type %q is not supported as a Vector/List element by this generator", field.Name, field.Type)
	}
}

// exportedName upper-cases a schema field name's first byte so the
// generated struct field is exported, without otherwise rewriting it.
func exportedName(name string) string {
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
