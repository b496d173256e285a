// Package resource loads shaders, textures, and mesh models from the res/
// directory next to the running binary's working directory.
package resource

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/hhllhhyyds/vulkan-dance/render"
	"github.com/hhllhhyyds/vulkan-dance/texture"
)

// Dir returns the asset directory, res/cube under the current working
// directory.
func Dir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate resource directory")
	}
	return filepath.Join(cwd, "res", "cube"), nil
}

// LoadString reads a text asset such as a shader source.
func LoadString(name string) (string, error) {
	data, err := LoadBinary(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadBinary reads a binary asset such as compiled shader bytecode.
func LoadBinary(name string) ([]byte, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load resource %q", name)
	}
	return data, nil
}

// LoadTexture reads an image asset and uploads it as a sampled texture.
func LoadTexture(ctx *render.Context, name string) (*texture.Texture, error) {
	data, err := LoadBinary(name)
	if err != nil {
		return nil, err
	}
	return texture.FromBytes(ctx, data, name)
}
