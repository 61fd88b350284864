package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/veld/internal/engine/material"
	"github.com/Faultbox/veld/internal/engine/renderer"
	"github.com/Faultbox/veld/internal/engine/resource"
	"github.com/Faultbox/veld/internal/engine/shader"
	"github.com/Faultbox/veld/internal/engine/terrain"
	"github.com/Faultbox/veld/internal/logger"
	"github.com/Faultbox/veld/pkg/formats"
	"github.com/Faultbox/veld/pkg/math"
)

// grassBatch is the uploaded batched mesh for one grass type.
type grassBatch struct {
	mesh           *resource.Mesh
	geom           *renderer.Geometry
	indicesPerCopy int32
	failed         bool
}

// TerrainView is the GL-side state of one terrain: the uploaded patch
// geometry, the height texture, and a batched grass mesh per grass type.
type TerrainView struct {
	Terrain *terrain.Terrain

	patch     *renderer.Geometry
	heightTex uint32
	grass     []grassBatch
}

func newTerrainView(t *terrain.Terrain) *TerrainView {
	return &TerrainView{Terrain: t}
}

// pollGrassMeshes starts model loads for new grass types and batches the
// meshes as they finish loading. Types without a model get the built-in
// cross quad.
func (v *TerrainView) pollGrassMeshes(resources *resource.Manager) {
	types := v.Terrain.GrassTypes()
	for len(v.grass) < len(types) {
		v.grass = append(v.grass, grassBatch{})
	}
	for i := range types {
		b := &v.grass[i]
		if b.geom != nil || b.failed {
			continue
		}
		if types[i].ModelPath == "" {
			v.uploadGrass(b, terrain.DefaultGrassMesh(), "")
			continue
		}
		if b.mesh == nil {
			b.mesh = resources.LoadMesh(types[i].ModelPath)
		}
		switch b.mesh.State() {
		case resource.StateReady:
			v.uploadGrass(b, b.mesh.Mesh(), types[i].ModelPath)
		case resource.StateFailure:
			b.failed = true
		}
	}
}

func (v *TerrainView) uploadGrass(b *grassBatch, mesh *formats.Mesh, path string) {
	batched, err := terrain.BuildGrassBatch(mesh, terrain.CopyCount)
	if err != nil {
		logger.Warn("grass mesh rejected",
			zap.String("model", path),
			zap.Error(err))
		b.failed = true
		return
	}
	b.geom = renderer.NewMeshGeometry(batched)
	b.indicesPerCopy = int32(len(mesh.Indices))
}

// render draws the terrain itself.
func (v *TerrainView) render(viewProj math.Mat4, cameraPos math.Vec3) {
	mat, ok := v.Terrain.Material().(*material.Material)
	if !ok || !mat.IsReady() {
		return
	}
	if v.heightTex == 0 {
		v.heightTex = renderer.NewHeightTexture(mat.HeightMap())
	}
	if v.patch == nil {
		v.patch = renderer.NewTerrainGeometry(v.Terrain.Geometry())
	}

	prog := mat.Program()
	prog.Use()
	prog.SetUniformMatrix4("view_proj", &viewProj)
	model := v.Terrain.Matrix()
	prog.SetUniformMatrix4("model", &model)
	prog.SetUniform1f("xz_scale", v.Terrain.XZScale())
	prog.SetUniform1f("y_scale", v.Terrain.YScale())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.heightTex)
	prog.SetUniform1i("height_map", 0)

	v.Terrain.Render(v.patch, cameraPos)
}

// renderGrass draws the collected grass batches. Blades are two-sided, so
// face culling is suspended for the duration.
func (v *TerrainView) renderGrass(prog *shader.Program, viewProj math.Mat4, cameraPos math.Vec3) {
	infos := v.Terrain.CollectGrass(cameraPos)
	if len(infos) == 0 {
		return
	}

	prog.Use()
	prog.SetUniformMatrix4("view_proj", &viewProj)
	gl.Disable(gl.CULL_FACE)
	for _, info := range infos {
		if info.TypeIndex >= len(v.grass) {
			continue
		}
		b := &v.grass[info.TypeIndex]
		if b.geom == nil {
			continue
		}
		prog.SetUniformMatrices4("grass_matrices", info.Transforms)
		b.geom.Draw(0, int32(len(info.Transforms))*b.indicesPerCopy, nil)
	}
	gl.Enable(gl.CULL_FACE)
}

func (v *TerrainView) destroy() {
	if v.patch != nil {
		v.patch.Delete()
		v.patch = nil
	}
	renderer.DeleteTexture(v.heightTex)
	v.heightTex = 0
	for i := range v.grass {
		if v.grass[i].geom != nil {
			v.grass[i].geom.Delete()
			v.grass[i].geom = nil
		}
	}
}
