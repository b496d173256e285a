package model

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/vkngwrapper/core/v3/core1_0"
)

type testVertex struct {
	Position  [3]float32
	TexCoords [2]float32
	Normal    [3]float32
}

func (testVertex) BindingDescription(binding int) core1_0.VertexInputBindingDescription {
	return core1_0.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    int(unsafe.Sizeof(testVertex{})),
		InputRate: core1_0.VertexInputRateVertex,
	}
}

func (testVertex) AttributeDescriptions(binding int) []core1_0.VertexInputAttributeDescription {
	v := testVertex{}
	return []core1_0.VertexInputAttributeDescription{
		{Binding: binding, Location: 0, Format: core1_0.FormatR32G32B32SignedFloat, Offset: int(unsafe.Offsetof(v.Position))},
		{Binding: binding, Location: 1, Format: core1_0.FormatR32G32SignedFloat, Offset: int(unsafe.Offsetof(v.TexCoords))},
		{Binding: binding, Location: 2, Format: core1_0.FormatR32G32B32SignedFloat, Offset: int(unsafe.Offsetof(v.Normal))},
	}
}

// fakeAllocator records the packed byte size and label of every buffer
// request without touching a device.
type fakeAllocator struct {
	vertexSizes  []int
	vertexLabels []string
	indexSizes   []int
	indexLabels  []string
}

func (f *fakeAllocator) CreateVertexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	f.vertexSizes = append(f.vertexSizes, binary.Size(data))
	f.vertexLabels = append(f.vertexLabels, label)
	return core1_0.Buffer{}, core1_0.DeviceMemory{}, nil
}

func (f *fakeAllocator) CreateIndexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	f.indexSizes = append(f.indexSizes, binary.Size(data))
	f.indexLabels = append(f.indexLabels, label)
	return core1_0.Buffer{}, core1_0.DeviceMemory{}, nil
}

func triangleModel() *RenderModel[testVertex] {
	vertices := []testVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 1, 0}},
	}
	return NewRenderModel(vertices, []uint32{0, 1, 2}, "t")
}

func TestAllocBuffersPackedSizes(t *testing.T) {
	m := triangleModel()
	alloc := &fakeAllocator{}

	if m.Allocated() {
		t.Fatal("model reports allocated before AllocBuffers")
	}

	err := m.AllocBuffers(alloc)
	if err != nil {
		t.Fatalf("AllocBuffers: %v", err)
	}

	if !m.Allocated() {
		t.Fatal("model does not report allocated after AllocBuffers")
	}

	wantVertexSize := 3 * int(unsafe.Sizeof(testVertex{}))
	if len(alloc.vertexSizes) != 1 || alloc.vertexSizes[0] != wantVertexSize {
		t.Errorf("vertex buffer sizes = %v, want [%d]", alloc.vertexSizes, wantVertexSize)
	}

	wantIndexSize := 3 * 4
	if len(alloc.indexSizes) != 1 || alloc.indexSizes[0] != wantIndexSize {
		t.Errorf("index buffer sizes = %v, want [%d]", alloc.indexSizes, wantIndexSize)
	}

	if alloc.vertexLabels[0] != "t vertex buffer" {
		t.Errorf("vertex label = %q, want %q", alloc.vertexLabels[0], "t vertex buffer")
	}
	if alloc.indexLabels[0] != "t index buffer" {
		t.Errorf("index label = %q, want %q", alloc.indexLabels[0], "t index buffer")
	}
}

func TestAllocBuffersTwicePanics(t *testing.T) {
	m := triangleModel()
	alloc := &fakeAllocator{}

	err := m.AllocBuffers(alloc)
	if err != nil {
		t.Fatalf("first AllocBuffers: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("second AllocBuffers did not panic")
		}
	}()
	_ = m.AllocBuffers(alloc)
}

func TestNewRenderModelCopiesData(t *testing.T) {
	vertices := []testVertex{{Position: [3]float32{1, 2, 3}}}
	indices := []uint32{0}

	m := NewRenderModel(vertices, indices, "copy")

	vertices[0].Position = [3]float32{9, 9, 9}
	indices[0] = 7

	if m.Vertices[0].Position != [3]float32{1, 2, 3} {
		t.Error("vertex data not copied on construction")
	}
	if m.Indices[0] != 0 {
		t.Error("index data not copied on construction")
	}
}
