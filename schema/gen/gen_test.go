package gen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSchemaFromBytes(t *testing.T) {
	data := []byte(`
package: example
structs:
  - name: TestStruct
    type: container
    children:
      - name: field1
        type: uint8
      - name: field2
        type: list
        limit: 100
        children:
          - name: element
            type: uint8
`)

	s, err := ReadSchemaFromBytes(data)
	require.NoError(t, err)
	require.Len(t, s.Structs, 1)
	require.Equal(t, "TestStruct", s.Structs[0].Name)
}

func TestParseSchemaToWorld(t *testing.T) {
	data := []byte(`
package: example
structs:
  - name: Container1
    type: container
    children:
      - name: field1
        type: uint32
      - name: field2
        type: bitlist
        limit: 256
      - name: field3
        type: bitvector
        size: 64
      - name: field4
        type: ref
        ref: Container2
  - name: Container2
    type: container
    children:
      - name: data
        type: vector
        size: 32
        children:
          - name: element
            type: uint8
`)

	s, err := ReadSchemaFromBytes(data)
	require.NoError(t, err)

	world, err := ParseSchemaToWorld(s)
	require.NoError(t, err)
	require.Contains(t, world.Types, "Container1")
	require.Contains(t, world.Types, "Container2")
}

func TestGenerateCode(t *testing.T) {
	data := []byte(`
package: example
structs:
  - name: Point
    type: container
    children:
      - name: x
        type: uint32
      - name: y
        type: uint32
      - name: tags
        type: list
        limit: 8
        children:
          - name: element
            type: uint8
`)

	s, err := ReadSchemaFromBytes(data)
	require.NoError(t, err)

	world, err := ParseSchemaToWorld(s)
	require.NoError(t, err)

	code, err := GenerateCode(world, s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, code.Render(&buf))
	require.Contains(t, buf.String(), "type Point struct")
}
