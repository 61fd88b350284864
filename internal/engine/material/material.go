// Package material binds a height texture and shader program into the
// terrain's material contract.
package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/veld/internal/engine/resource"
	"github.com/Faultbox/veld/internal/engine/shader"
	"github.com/Faultbox/veld/internal/engine/terrain"
	"github.com/Faultbox/veld/internal/engine/texture"
)

// Definition is a material file: a height map plus the shader pair that
// renders it.
type Definition struct {
	Name      string `yaml:"name"`
	HeightMap string `yaml:"heightmap"`
	Vertex    string `yaml:"vertex"`
	Fragment  string `yaml:"fragment"`
}

// LoadDefinition reads a YAML material definition.
func LoadDefinition(path string) (Definition, error) {
	var def Definition
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("reading material: %w", err)
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("parsing material %s: %w", path, err)
	}
	if def.HeightMap == "" {
		return def, fmt.Errorf("material %s: heightmap not set", path)
	}
	return def, nil
}

// Material implements terrain.Material over an asynchronously loaded height
// texture. The terrain polls IsReady each frame and starts drawing once the
// texture arrives.
type Material struct {
	def     Definition
	tex     *resource.Texture
	program *shader.Program
}

// New builds a material from a loaded definition. The texture handle may
// still be loading.
func New(def Definition, tex *resource.Texture, program *shader.Program) *Material {
	return &Material{def: def, tex: tex, program: program}
}

// Definition returns the source definition.
func (m *Material) Definition() Definition { return m.def }

// IsReady reports whether the height texture finished decoding.
func (m *Material) IsReady() bool {
	return m.tex != nil && m.tex.State() == resource.StateReady
}

// Failed reports whether the height texture load failed.
func (m *Material) Failed() bool {
	return m.tex != nil && m.tex.State() == resource.StateFailure
}

// Shader returns the uniform sink used by the terrain.
func (m *Material) Shader() terrain.Shader { return m.program }

// Program returns the concrete GL program for scene-level uniforms.
func (m *Material) Program() *shader.Program { return m.program }

// HeightMap returns the decoded height map, nil until ready.
func (m *Material) HeightMap() *texture.HeightMap {
	if m.tex == nil {
		return nil
	}
	return m.tex.HeightMap()
}
