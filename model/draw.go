package model

import "github.com/vkngwrapper/core/v3/core1_0"

// RenderPass is the slice of a recording render pass the draw helpers need.
// render.Pass satisfies it; tests use a recording fake.
type RenderPass interface {
	BindVertexBuffers(firstBinding int, buffers []core1_0.Buffer, offsets []int)
	BindIndexBuffer(buffer core1_0.Buffer, offset int, indexType core1_0.IndexType)
	BindDescriptorSets(firstSet int, sets []core1_0.DescriptorSet)
	DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int)
}

// DrawMesh draws a single mesh with one material and the shared camera
// resource, instance count 1.
func DrawMesh(pass RenderPass, mesh *Mesh, material *Material, camera core1_0.DescriptorSet) {
	DrawMeshInstanced(pass, mesh, material, camera, 0, 1)
}

// DrawMeshInstanced binds the mesh's vertex buffer at slot 0, its 32-bit
// index buffer, the material's resource group at descriptor slot 0 and the
// camera resource at slot 1, then issues one indexed draw over the mesh's
// full index range for instances [firstInstance, firstInstance+instanceCount).
func DrawMeshInstanced(pass RenderPass, mesh *Mesh, material *Material, camera core1_0.DescriptorSet, firstInstance, instanceCount int) {
	pass.BindVertexBuffers(0, []core1_0.Buffer{mesh.VertexBuffer}, []int{0})
	pass.BindIndexBuffer(mesh.IndexBuffer, 0, core1_0.IndexTypeUInt32)
	pass.BindDescriptorSets(0, []core1_0.DescriptorSet{material.DescriptorSet})
	pass.BindDescriptorSets(1, []core1_0.DescriptorSet{camera})
	pass.DrawIndexed(mesh.IndexCount, instanceCount, 0, 0, firstInstance)
}

// DrawModel draws every mesh of the model once.
func DrawModel(pass RenderPass, m *MeshModel, camera core1_0.DescriptorSet) {
	DrawModelInstanced(pass, m, camera, 0, 1)
}

// DrawModelInstanced iterates the model's meshes in stored order, resolving
// each mesh's material by index, and issues the per-mesh instanced draw with
// the same instance range throughout. No sorting, culling, or batching: the
// call sequence maps one to one onto the recorded draws.
func DrawModelInstanced(pass RenderPass, m *MeshModel, camera core1_0.DescriptorSet, firstInstance, instanceCount int) {
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		material := &m.Materials[mesh.MaterialIndex]
		DrawMeshInstanced(pass, mesh, material, camera, firstInstance, instanceCount)
	}
}
