package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func chdirWithAssets(t *testing.T, files map[string]string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "res", "cube")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadString(t *testing.T) {
	chdirWithAssets(t, map[string]string{"shader.vert": "#version 450\n"})

	got, err := LoadString("shader.vert")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#version 450\n" {
		t.Errorf("content = %q", got)
	}
}

func TestLoadBinaryMissingFile(t *testing.T) {
	chdirWithAssets(t, nil)

	_, err := LoadBinary("nope.spv")
	if err == nil {
		t.Fatal("expected an error for a missing asset")
	}
	if !strings.Contains(err.Error(), "nope.spv") {
		t.Errorf("error does not name the asset: %v", err)
	}
}

const quadOBJ = `
mtllib quad.mtl
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl stone
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const quadMTL = `
newmtl stone
map_Kd stone.png
`

func decodeQuad(t *testing.T) *obj.Decoder {
	t.Helper()
	decoder, err := obj.DecodeReader(strings.NewReader(quadOBJ), strings.NewReader(quadMTL))
	if err != nil {
		t.Fatal(err)
	}
	return decoder
}

func TestBuildMeshSourcesTriangulatesQuad(t *testing.T) {
	sources, materials := buildMeshSources(decodeQuad(t))

	if len(sources) != 1 {
		t.Fatalf("got %d mesh sources, want 1", len(sources))
	}
	src := sources[0]

	// A quad becomes two triangles sharing two vertices.
	if len(src.Indices) != 6 {
		t.Errorf("got %d indices, want 6", len(src.Indices))
	}
	if len(src.Vertices) != 4 {
		t.Errorf("got %d unique vertices, want 4", len(src.Vertices))
	}

	if len(materials) != 1 || materials[0] != "stone" {
		t.Errorf("materials = %v, want [stone]", materials)
	}
	if src.MaterialIndex != 0 {
		t.Errorf("material index = %d, want 0", src.MaterialIndex)
	}
}

func TestBuildMeshSourcesFlipsV(t *testing.T) {
	sources, _ := buildMeshSources(decodeQuad(t))
	src := sources[0]

	for _, vert := range src.Vertices {
		if vert.Position[1] == 1 && vert.TexCoords[1] != 0 {
			t.Errorf("vertex %v: V coordinate not flipped, got %v", vert.Position, vert.TexCoords[1])
		}
	}
}

// countingAllocator fails the nth buffer allocation and records labels for
// the ones before it.
type countingAllocator struct {
	labels []string
	failAt int
}

func (a *countingAllocator) allocate(label string) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	if len(a.labels)+1 == a.failAt {
		return core1_0.Buffer{}, core1_0.DeviceMemory{}, errors.New("out of device memory")
	}
	a.labels = append(a.labels, label)
	return core1_0.Buffer{}, core1_0.DeviceMemory{}, nil
}

func (a *countingAllocator) CreateVertexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	return a.allocate(label + " vertex")
}

func (a *countingAllocator) CreateIndexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	return a.allocate(label + " index")
}

func TestRealizeMeshesKeepsPartialMeshesOnError(t *testing.T) {
	sources := []meshSource{
		{Name: "a", Indices: []uint32{0, 1, 2}},
		{Name: "b", Indices: []uint32{0, 1, 2}},
	}

	// Fail the second mesh's vertex buffer, after the first mesh has both
	// of its buffers.
	alloc := &countingAllocator{failAt: 3}
	meshes, err := realizeMeshes(alloc, "quad.obj", sources)
	if err == nil {
		t.Fatal("expected the allocation failure to surface")
	}

	// The failed mesh must still be in the slice so its already-created
	// handles reach cleanup.
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
	if meshes[1].Name != "b" {
		t.Errorf("retained mesh = %q, want %q", meshes[1].Name, "b")
	}

	want := []string{"quad.obj:a vertex", "quad.obj:a index"}
	if len(alloc.labels) != len(want) || alloc.labels[0] != want[0] || alloc.labels[1] != want[1] {
		t.Errorf("allocations = %v, want %v", alloc.labels, want)
	}
}

func TestBuildMeshSourcesMaterialOrder(t *testing.T) {
	const twoMaterials = `
o a
v 0 0 0
v 1 0 0
v 1 1 0
vt 0 0
vn 0 0 1
usemtl second
f 1/1/1 2/1/1 3/1/1
o b
v 0 0 1
v 1 0 1
v 1 1 1
usemtl first
f 4/1/1 5/1/1 6/1/1
`
	decoder, err := obj.DecodeReader(strings.NewReader(twoMaterials), nil)
	if err != nil {
		t.Fatal(err)
	}

	sources, materials := buildMeshSources(decoder)
	if len(sources) != 2 {
		t.Fatalf("got %d mesh sources, want 2", len(sources))
	}
	if len(materials) != 2 || materials[0] != "second" || materials[1] != "first" {
		t.Errorf("materials = %v, want [second first] in first-reference order", materials)
	}
	if sources[0].MaterialIndex != 0 || sources[1].MaterialIndex != 1 {
		t.Errorf("material indices = %d, %d, want 0, 1", sources[0].MaterialIndex, sources[1].MaterialIndex)
	}
}
