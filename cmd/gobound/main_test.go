package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSTL = `solid wedge
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 0 1 0
    vertex 1 0 0
  endloop
endfacet
facet normal 1 1 1
  outer loop
    vertex 1 0 0
    vertex 0 1 0
    vertex 0 0 2
  endloop
endfacet
endsolid wedge
`

const testScene = `
camera:
  position: [0, 0, 0]
  target: [0, 0, -1]
  fov: 90
  near: 1
  far: 100
volumes:
  - name: crate
    box: {min: [-1, -1, -20], max: [1, 1, -10]}
  - name: ball
    sphere: {center: [0, 0, -100], radius: 10}
  - name: ghost
    sphere: {center: [0, 0, 20], radius: 5}
  - name: marker
    point: [9, -9, -10]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBoundsCommand(t *testing.T) {
	out, err := run(t, "bounds", writeFile(t, "wedge.stl", testSTL))
	require.NoError(t, err)

	assert.Contains(t, out, "Name: wedge")
	assert.Contains(t, out, "Triangles: 2")
	assert.Contains(t, out, "Max: (1.000000, 1.000000, 2.000000)")
	assert.Contains(t, out, "Size: (1.000000, 1.000000, 2.000000)")

	out, err = run(t, "bounds", writeFile(t, "wedge.stl", testSTL), "--nearest", "0,0,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Nearest vertex to (0.000000, 0.000000, 3.000000): (0.000000, 0.000000, 2.000000) (distance: 1.000000)")

	_, err = run(t, "bounds", filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestCullCommand(t *testing.T) {
	out, err := run(t, "cull", writeFile(t, "scene.yaml", testScene))
	require.NoError(t, err)

	assert.Regexp(t, `crate\s+box\s+inside`, out)
	assert.Regexp(t, `ball\s+sphere\s+partial`, out)
	assert.Regexp(t, `ghost\s+sphere\s+culled`, out)
	assert.Regexp(t, `marker\s+point\s+inside`, out)
	assert.Contains(t, out, "3 of 4 volumes visible")
}

func TestRaycastCommand(t *testing.T) {
	path := writeFile(t, "scene.yaml", testScene)

	out, err := run(t, "raycast", path, "--origin", "0,0,5", "--dir", "0,0,-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Hit: crate at distance 15.000000")

	out, err = run(t, "raycast", path, "--origin", "0,50,0", "--dir", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "No hit")

	// the center pixel looks straight down the view axis from the near plane
	out, err = run(t, "raycast", path, "--screen", "400,300")
	require.NoError(t, err)
	assert.Contains(t, out, "Hit: crate at distance 9.000000")

	_, err = run(t, "raycast", path)
	assert.Error(t, err)

	_, err = run(t, "raycast", path, "--origin", "0,0", "--dir", "0,0,-1")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	path := writeFile(t, "scene.toml", `
[camera]
position = [0.0, 0.0, 0.0]
target = [0.0, 0.0, -1.0]

[[volumes]]
name = "low"
point = [0.0, -3.0, 0.0]

[[volumes]]
name = "high"
sphere = { center = [0.0, 3.0, 0.0], radius = 1.0 }
`)

	out, err := run(t, "classify", path, "--plane", "0,1,0,0")
	require.NoError(t, err)
	assert.Regexp(t, `low\s+point\s+back`, out)
	assert.Regexp(t, `high\s+sphere\s+front`, out)

	_, err = run(t, "classify", path, "--plane", "0,0,0,1")
	assert.Error(t, err)
}
