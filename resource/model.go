package resource

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/hhllhhyyds/vulkan-dance/model"
	"github.com/hhllhhyyds/vulkan-dance/render"
	"github.com/hhllhhyyds/vulkan-dance/texture"
)

// meshSource is the CPU-side result of decoding one OBJ object: packed
// vertices, triangulated indices, and the material the whole object uses.
type meshSource struct {
	Name          string
	Vertices      []model.ModelVertex
	Indices       []uint32
	MaterialIndex int
}

// LoadMeshModel decodes an OBJ asset (with its sibling .mtl file), uploads
// one vertex/index buffer pair per object, and loads each referenced
// material's diffuse texture into a descriptor set using materialLayout.
func LoadMeshModel(ctx *render.Context, name string, materialLayout core1_0.DescriptorSetLayout) (*model.MeshModel, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	meshFile, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model %q", name)
	}
	defer meshFile.Close()

	var matReader io.Reader
	matName := strings.TrimSuffix(name, filepath.Ext(name)) + ".mtl"
	matFile, err := os.Open(filepath.Join(dir, matName))
	if err == nil {
		defer matFile.Close()
		matReader = matFile
	}

	decoder, err := obj.DecodeReader(meshFile, matReader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode model %q", name)
	}

	sources, materialNames := buildMeshSources(decoder)

	result := &model.MeshModel{Name: name}
	destroyOnError := true
	defer func() {
		if destroyOnError {
			result.Destroy(ctx.Device)
		}
	}()

	for _, matName := range materialNames {
		mat, ok := decoder.Materials[matName]
		if !ok || mat.MapKd == "" {
			return nil, errors.Newf("model %q: material %q has no diffuse texture", name, matName)
		}

		tex, err := LoadTexture(ctx, mat.MapKd)
		if err != nil {
			return nil, err
		}
		result.Materials = append(result.Materials, model.Material{Name: matName, Texture: tex})

		set, err := texture.NewMaterialSet(ctx, materialLayout, tex)
		if err != nil {
			return nil, err
		}
		result.Materials[len(result.Materials)-1].DescriptorSet = set
	}

	result.Meshes, err = realizeMeshes(ctx, name, sources)
	if err != nil {
		return nil, err
	}

	destroyOnError = false
	return result, nil
}

// realizeMeshes uploads one vertex/index buffer pair per mesh source. Each
// mesh is appended before its buffers are allocated, so on error the
// returned slice still carries every handle created so far and the caller's
// cleanup can release them.
func realizeMeshes(alloc model.BufferAllocator, name string, sources []meshSource) ([]model.Mesh, error) {
	meshes := make([]model.Mesh, 0, len(sources))

	var err error
	for _, src := range sources {
		meshes = append(meshes, model.Mesh{
			Name:          src.Name,
			IndexCount:    len(src.Indices),
			MaterialIndex: src.MaterialIndex,
		})

		mesh := &meshes[len(meshes)-1]
		mesh.VertexBuffer, mesh.VertexMemory, err = alloc.CreateVertexBuffer(src.Vertices, name+":"+src.Name)
		if err != nil {
			return meshes, err
		}

		mesh.IndexBuffer, mesh.IndexMemory, err = alloc.CreateIndexBuffer(src.Indices, name+":"+src.Name)
		if err != nil {
			return meshes, err
		}
	}

	return meshes, nil
}

// buildMeshSources triangulates every decoded object's faces into packed
// vertex and index slices, deduplicating vertices per object. Materials are
// numbered in first-reference order; the returned slice maps material index
// back to name.
func buildMeshSources(decoder *obj.Decoder) ([]meshSource, []string) {
	var sources []meshSource
	var materialNames []string
	materialIndices := make(map[string]int)

	for _, decodedObj := range decoder.Objects {
		src := meshSource{Name: decodedObj.Name}
		uniqueVertices := make(map[int]uint32)

		for _, face := range decodedObj.Faces {
			if _, seen := materialIndices[face.Material]; !seen {
				materialIndices[face.Material] = len(materialNames)
				materialNames = append(materialNames, face.Material)
			}
			src.MaterialIndex = materialIndices[face.Material]

			for i := 2; i < len(face.Vertices); i++ {
				addVertex(decoder, &src, uniqueVertices, face, 0)
				addVertex(decoder, &src, uniqueVertices, face, i-1)
				addVertex(decoder, &src, uniqueVertices, face, i)
			}
		}

		sources = append(sources, src)
	}

	return sources, materialNames
}

func addVertex(decoder *obj.Decoder, src *meshSource, uniqueVertices map[int]uint32, face obj.Face, faceIndex int) {
	vertInd := face.Vertices[faceIndex]
	index, vertexExists := uniqueVertices[vertInd]

	if !vertexExists {
		vert := model.ModelVertex{Position: [3]float32{
			decoder.Vertices[vertInd*3],
			decoder.Vertices[vertInd*3+1],
			decoder.Vertices[vertInd*3+2],
		}}

		if uvInd := face.Uvs[faceIndex]; uvInd >= 0 && uvInd*2+1 < len(decoder.Uvs) {
			vert.TexCoords = [2]float32{
				decoder.Uvs[uvInd*2],
				1.0 - decoder.Uvs[uvInd*2+1],
			}
		}

		if normInd := face.Normals[faceIndex]; normInd >= 0 && normInd*3+2 < len(decoder.Normals) {
			vert.Normal = [3]float32{
				decoder.Normals[normInd*3],
				decoder.Normals[normInd*3+1],
				decoder.Normals[normInd*3+2],
			}
		}

		index = uint32(len(src.Vertices))
		src.Vertices = append(src.Vertices, vert)
		uniqueVertices[vertInd] = index
	}

	src.Indices = append(src.Indices, index)
}
