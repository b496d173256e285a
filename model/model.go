// Package model holds CPU-side vertex/index data and its realized GPU
// counterparts, and provides the draw helpers that bind per-mesh material
// and camera resources for instanced indexed draws.
package model

import (
	"fmt"

	"github.com/vkngwrapper/core/v3/core1_0"
)

// Vertex describes a vertex type's GPU buffer layout. Implementations are
// plain structs of float32 fields whose packed bytes match the descriptions
// they return.
type Vertex interface {
	BindingDescription(binding int) core1_0.VertexInputBindingDescription
	AttributeDescriptions(binding int) []core1_0.VertexInputAttributeDescription
}

// BufferAllocator creates realized GPU buffers from packed data. Implemented
// by render.Context; tests substitute a recording fake.
type BufferAllocator interface {
	CreateVertexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error)
	CreateIndexBuffer(data any, label string) (core1_0.Buffer, core1_0.DeviceMemory, error)
}

// RenderModel owns an ordered vertex sequence, an ordered 32-bit index
// sequence, and the GPU buffers realized from them. Buffers are allocated at
// most once and are never resynchronized: mutating Vertices or Indices after
// AllocBuffers does not update the GPU copies.
//
// A RenderModel is not directly drawable; drawing goes through the MeshModel
// path.
type RenderModel[V Vertex] struct {
	Vertices []V
	Indices  []uint32
	Label    string

	VertexBuffer core1_0.Buffer
	VertexMemory core1_0.DeviceMemory
	IndexBuffer  core1_0.Buffer
	IndexMemory  core1_0.DeviceMemory

	allocated bool
}

// NewRenderModel copies the given vertex and index data into a new model. No
// GPU work happens until AllocBuffers.
func NewRenderModel[V Vertex](vertices []V, indices []uint32, label string) *RenderModel[V] {
	m := &RenderModel[V]{
		Vertices: make([]V, len(vertices)),
		Indices:  make([]uint32, len(indices)),
		Label:    label,
	}
	copy(m.Vertices, vertices)
	copy(m.Indices, indices)
	return m
}

// AllocBuffers realizes the vertex and index buffers on the device embodied
// by alloc. The buffer contents are the packed vertex and index sequences at
// the time of the call. Calling AllocBuffers twice on the same model is a
// caller bug and panics.
func (m *RenderModel[V]) AllocBuffers(alloc BufferAllocator) error {
	if m.allocated {
		panic(fmt.Sprintf("model %q: buffers allocated twice", m.Label))
	}
	m.allocated = true

	var err error
	m.VertexBuffer, m.VertexMemory, err = alloc.CreateVertexBuffer(m.Vertices, m.Label+" vertex buffer")
	if err != nil {
		return err
	}

	m.IndexBuffer, m.IndexMemory, err = alloc.CreateIndexBuffer(m.Indices, m.Label+" index buffer")
	return err
}

// Allocated reports whether AllocBuffers has run.
func (m *RenderModel[V]) Allocated() bool {
	return m.allocated
}

// Destroy releases the realized buffers, if any. The CPU-side data stays.
func (m *RenderModel[V]) Destroy(device core1_0.CoreDeviceDriver) {
	if m.VertexBuffer.Initialized() {
		device.DestroyBuffer(m.VertexBuffer, nil)
		m.VertexBuffer = core1_0.Buffer{}
	}
	if m.VertexMemory.Initialized() {
		device.FreeMemory(m.VertexMemory, nil)
		m.VertexMemory = core1_0.DeviceMemory{}
	}
	if m.IndexBuffer.Initialized() {
		device.DestroyBuffer(m.IndexBuffer, nil)
		m.IndexBuffer = core1_0.Buffer{}
	}
	if m.IndexMemory.Initialized() {
		device.FreeMemory(m.IndexMemory, nil)
		m.IndexMemory = core1_0.DeviceMemory{}
	}
}

// Mesh is a named, already realized vertex/index buffer pair plus an index
// into its MeshModel's material list.
type Mesh struct {
	Name string

	VertexBuffer core1_0.Buffer
	VertexMemory core1_0.DeviceMemory
	IndexBuffer  core1_0.Buffer
	IndexMemory  core1_0.DeviceMemory

	IndexCount    int
	MaterialIndex int
}

// Material is a named texture resource plus the bound-resource-group handle
// used at draw time.
type Material struct {
	Name          string
	Texture       Texture
	DescriptorSet core1_0.DescriptorSet
}

// Texture is the slice of a GPU texture a material needs to own for cleanup.
// The texture package produces these.
type Texture interface {
	Destroy(device core1_0.CoreDeviceDriver)
}

// MeshModel is an ordered collection of meshes and the materials they
// reference by index. Every mesh's MaterialIndex must be in range of
// Materials; the draw helpers do not validate this.
type MeshModel struct {
	Name      string
	Meshes    []Mesh
	Materials []Material
}

// Destroy releases all mesh buffers and material resources.
func (m *MeshModel) Destroy(device core1_0.CoreDeviceDriver) {
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		if mesh.VertexBuffer.Initialized() {
			device.DestroyBuffer(mesh.VertexBuffer, nil)
		}
		if mesh.VertexMemory.Initialized() {
			device.FreeMemory(mesh.VertexMemory, nil)
		}
		if mesh.IndexBuffer.Initialized() {
			device.DestroyBuffer(mesh.IndexBuffer, nil)
		}
		if mesh.IndexMemory.Initialized() {
			device.FreeMemory(mesh.IndexMemory, nil)
		}
	}
	m.Meshes = nil

	for i := range m.Materials {
		if m.Materials[i].Texture != nil {
			m.Materials[i].Texture.Destroy(device)
		}
	}
	m.Materials = nil
}
