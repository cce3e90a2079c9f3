package gfx

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

func shaderKind(lib native.Library) handle.Kind[native.Shader] {
	return handle.Kind[native.Shader]{ID: handle.KindShader, Valid: lib.IsShaderReady, Release: lib.UnloadShader}
}

// Shader is a linked GPU program.
type Shader struct {
	*handle.Handle[native.Shader]
	lib native.Library
}

// LoadShader compiles the vertex and fragment files. An empty path selects
// the library's default stage.
func LoadShader(lib native.Library, vsPath, fsPath string) (*Shader, error) {
	h, err := shaderKind(lib).Load(func() native.Shader { return lib.LoadShader(vsPath, fsPath) })
	if err != nil {
		return nil, err
	}
	return &Shader{Handle: h, lib: lib}, nil
}

// ShaderFromSource compiles shader stages from source text.
func ShaderFromSource(lib native.Library, vsCode, fsCode string) (*Shader, error) {
	h, err := shaderKind(lib).Load(func() native.Shader { return lib.LoadShaderFromMemory(vsCode, fsCode) })
	if err != nil {
		return nil, err
	}
	return &Shader{Handle: h, lib: lib}, nil
}

// Location resolves a uniform. Unknown names yield UnableToLoad("shader location").
func (s *Shader) Location(name string) (int32, error) {
	loc := s.lib.GetShaderLocation(s.Raw(), name)
	if loc < 0 {
		logging.Named("gfx").Warn("shader uniform not found", zap.String("uniform", name))
		return -1, errors.UnableToLoad("shader location")
	}
	return loc, nil
}

// SetValue uploads value to the uniform at loc.
func (s *Shader) SetValue(loc int32, value []float32, uniform native.ShaderUniformType) {
	s.lib.SetShaderValue(s.Raw(), loc, value, uniform)
}

// Set resolves name and uploads value in one step.
func (s *Shader) Set(name string, value []float32, uniform native.ShaderUniformType) error {
	loc, err := s.Location(name)
	if err != nil {
		return err
	}
	s.SetValue(loc, value, uniform)
	return nil
}
