package model

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3/core1_0"
)

// ModelVertex is the vertex layout produced by the OBJ loader: position at
// location 0, texture coordinates at location 1, normal at location 2.
type ModelVertex struct {
	Position  [3]float32
	TexCoords [2]float32
	Normal    [3]float32
}

func (v ModelVertex) BindingDescription(binding int) core1_0.VertexInputBindingDescription {
	return core1_0.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    int(unsafe.Sizeof(v)),
		InputRate: core1_0.VertexInputRateVertex,
	}
}

func (v ModelVertex) AttributeDescriptions(binding int) []core1_0.VertexInputAttributeDescription {
	return []core1_0.VertexInputAttributeDescription{
		{
			Binding:  binding,
			Location: 0,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Position)),
		},
		{
			Binding:  binding,
			Location: 1,
			Format:   core1_0.FormatR32G32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.TexCoords)),
		},
		{
			Binding:  binding,
			Location: 2,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Normal)),
		},
	}
}
