// Command genssz renders Go struct skeletons from one or more YAML
// schema files naming SSZ container shapes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gfx-labs/go-ssz-core/schema/gen"
)

func main() {
	output := flag.String("output", "", "Output Go file")
	flag.Parse()

	inputFiles := flag.Args()
	if len(inputFiles) == 0 || *output == "" {
		fmt.Fprintf(os.Stderr, "Usage: genssz -output generated.go schema1.yml schema2.yml ...\n")
		os.Exit(1)
	}

	combinedSchema, err := combineSchemas(inputFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to combine schemas: %v\n", err)
		os.Exit(1)
	}

	world, err := gen.ParseSchemaToWorld(combinedSchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve schema: %v\n", err)
		os.Exit(1)
	}

	code, err := gen.GenerateCode(world, combinedSchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate code: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := code.Render(file); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("generated %s from %s\n", *output, strings.Join(inputFiles, ", "))
}

func combineSchemas(files []string) (*gen.Schema, error) {
	var combined *gen.Schema
	seenPackage := false

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		s, err := gen.ReadSchemaFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		if combined == nil {
			combined = &gen.Schema{}
		}
		if s.Package != "" {
			if seenPackage && combined.Package != s.Package {
				return nil, fmt.Errorf("conflicting package names: %s vs %s", combined.Package, s.Package)
			}
			seenPackage = true
			combined.Package = s.Package
		}
		combined.Structs = append(combined.Structs, s.Structs...)
	}

	if combined == nil {
		return nil, fmt.Errorf("no schemas found")
	}
	if combined.Package == "" {
		return nil, fmt.Errorf("no package name specified in any schema")
	}
	return combined, nil
}
