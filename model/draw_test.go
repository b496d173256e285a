package model

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
)

// recordingPass records the command sequence it receives so tests can assert
// on draw order and arguments.
type recordingPass struct {
	calls []string
}

func (p *recordingPass) BindVertexBuffers(firstBinding int, buffers []core1_0.Buffer, offsets []int) {
	p.calls = append(p.calls, fmt.Sprintf("vertex slot=%d count=%d", firstBinding, len(buffers)))
}

func (p *recordingPass) BindIndexBuffer(buffer core1_0.Buffer, offset int, indexType core1_0.IndexType) {
	p.calls = append(p.calls, fmt.Sprintf("index offset=%d type=%d", offset, indexType))
}

func (p *recordingPass) BindDescriptorSets(firstSet int, sets []core1_0.DescriptorSet) {
	p.calls = append(p.calls, fmt.Sprintf("descriptors slot=%d count=%d", firstSet, len(sets)))
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) {
	p.calls = append(p.calls, fmt.Sprintf("draw indices=%d instances=%d firstIndex=%d vertexOffset=%d firstInstance=%d",
		indexCount, instanceCount, firstIndex, vertexOffset, firstInstance))
}

func meshCommands(indexCount, instanceCount, firstInstance int) []string {
	return []string{
		"vertex slot=0 count=1",
		fmt.Sprintf("index offset=0 type=%d", core1_0.IndexTypeUInt32),
		"descriptors slot=0 count=1",
		"descriptors slot=1 count=1",
		fmt.Sprintf("draw indices=%d instances=%d firstIndex=0 vertexOffset=0 firstInstance=%d",
			indexCount, instanceCount, firstInstance),
	}
}

func TestDrawMeshDelegatesToSingleInstance(t *testing.T) {
	pass := &recordingPass{}
	mesh := &Mesh{Name: "m", IndexCount: 3}
	material := &Material{Name: "mat"}

	DrawMesh(pass, mesh, material, core1_0.DescriptorSet{})

	want := meshCommands(3, 1, 0)
	if !reflect.DeepEqual(pass.calls, want) {
		t.Errorf("calls = %v, want %v", pass.calls, want)
	}
}

func TestDrawMeshInstancedRange(t *testing.T) {
	pass := &recordingPass{}
	mesh := &Mesh{Name: "m", IndexCount: 36}
	material := &Material{Name: "mat"}

	DrawMeshInstanced(pass, mesh, material, core1_0.DescriptorSet{}, 2, 7)

	want := meshCommands(36, 7, 2)
	if !reflect.DeepEqual(pass.calls, want) {
		t.Errorf("calls = %v, want %v", pass.calls, want)
	}
}

func TestDrawModelInstancedVisitsMeshesInOrder(t *testing.T) {
	pass := &recordingPass{}
	m := &MeshModel{
		Name: "two meshes",
		Meshes: []Mesh{
			{Name: "first", IndexCount: 3, MaterialIndex: 0},
			{Name: "second", IndexCount: 6, MaterialIndex: 0},
		},
		Materials: []Material{
			{Name: "shared"},
		},
	}

	DrawModelInstanced(pass, m, core1_0.DescriptorSet{}, 0, 5)

	var want []string
	want = append(want, meshCommands(3, 5, 0)...)
	want = append(want, meshCommands(6, 5, 0)...)
	if !reflect.DeepEqual(pass.calls, want) {
		t.Errorf("calls = %v, want %v", pass.calls, want)
	}
}

func TestDrawModelResolvesPerMeshMaterials(t *testing.T) {
	pass := &recordingPass{}
	m := &MeshModel{
		Meshes: []Mesh{
			{Name: "a", IndexCount: 3, MaterialIndex: 1},
			{Name: "b", IndexCount: 3, MaterialIndex: 0},
		},
		Materials: []Material{
			{Name: "zero"},
			{Name: "one"},
		},
	}

	// Resolution is by index into the model's material list; both indices
	// are valid here, so both meshes must draw without faulting.
	DrawModel(pass, m, core1_0.DescriptorSet{})

	draws := 0
	for _, call := range pass.calls {
		if len(call) >= 4 && call[:4] == "draw" {
			draws++
		}
	}
	if draws != 2 {
		t.Errorf("draw calls = %d, want 2", draws)
	}
}

func TestDrawModelOutOfRangeMaterialPanics(t *testing.T) {
	pass := &recordingPass{}
	m := &MeshModel{
		Meshes:    []Mesh{{Name: "bad", IndexCount: 3, MaterialIndex: 2}},
		Materials: []Material{{Name: "only"}},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range material index did not panic")
		}
	}()
	DrawModel(pass, m, core1_0.DescriptorSet{})
}
