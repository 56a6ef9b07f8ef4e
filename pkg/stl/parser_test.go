package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tetrahedron = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 2
    endloop
  endfacet
  facet normal -1 0 0
    outer loop
      vertex 0 0 0
      vertex 0 0 2
      vertex 0 1 0
    endloop
  endfacet
  facet normal 1 1 1
    outer loop
      vertex 1 0 0
      vertex 0 1 0
      vertex 0 0 2
    endloop
  endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(tetrahedron))
	require.NoError(t, err)

	assert.Equal(t, "tetra", model.Name)
	assert.Equal(t, 4, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, 0, -1), model.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(0, 0, 2), model.Triangles[3].V3)
}

func TestParseASCIIMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad number", "solid x\nfacet normal 0 0 1\nvertex 0 zero 0\n"},
		{"short facet", "solid x\nfacet normal 0 0 1\nvertex 0 0 0\nvertex 1 0 0\nendfacet\n"},
		{"missing normal", "solid x\nfacet 0 0 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseBinary(t *testing.T) {
	ascii, err := ParseBytes([]byte(tetrahedron))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, ascii))
	assert.Equal(t, headerSize+4+4*recordSize, buf.Len())

	model, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "tetra", model.Name)
	assert.Equal(t, ascii.Triangles, model.Triangles)
}

func TestParseBinaryNamedSolid(t *testing.T) {
	// exporters often put "solid" into the binary header
	model := NewModel("solid part")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3UnitZ,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, model))

	parsed, err := ParseBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.TriangleCount())
	assert.Equal(t, model.Triangles, parsed.Triangles)
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	model, err := ParseBytes([]byte(tetrahedron))
	require.NoError(t, err)
	require.NoError(t, WriteBinary(&buf, model))

	_, err = ParseBytes(buf.Bytes()[:buf.Len()-recordSize])
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseBytes([]byte("abc"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.stl")
	require.NoError(t, os.WriteFile(path, []byte(tetrahedron), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 4, model.TriangleCount())

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}
