// Package scene ties terrains, materials and grass together into a
// drawable world.
package scene

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/veld/internal/engine/material"
	"github.com/Faultbox/veld/internal/engine/picking"
	"github.com/Faultbox/veld/internal/engine/resource"
	"github.com/Faultbox/veld/internal/engine/shader"
	"github.com/Faultbox/veld/internal/engine/terrain"
	"github.com/Faultbox/veld/internal/logger"
	"github.com/Faultbox/veld/pkg/math"
)

// Scene owns the terrain views and the shared shader programs.
type Scene struct {
	resources *resource.Manager

	terrainProgram *shader.Program
	grassProgram   *shader.Program

	views  []*TerrainView
	nextID int32
}

// New compiles the scene shader programs. Requires a current GL context.
func New(resources *resource.Manager) (*Scene, error) {
	terrainProg, err := shader.NewProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	grassProg, err := shader.NewProgram(grassVertexShader, grassFragmentShader)
	if err != nil {
		terrainProg.Delete()
		return nil, fmt.Errorf("grass shader: %w", err)
	}
	return &Scene{
		resources:      resources,
		terrainProgram: terrainProg,
		grassProgram:   grassProg,
		nextID:         1,
	}, nil
}

// AddTerrain creates a terrain entity with the given material file and
// starts its height texture load.
func (s *Scene) AddTerrain(materialPath string) (*TerrainView, error) {
	t := terrain.New(s.nextID)
	s.nextID++
	if err := s.attachMaterial(t, materialPath); err != nil {
		return nil, err
	}
	v := newTerrainView(t)
	s.views = append(s.views, v)
	logger.Info("terrain added",
		zap.Int32("entity", t.EntityID()),
		zap.String("material", materialPath))
	return v, nil
}

// AddTerrainWithDefinition creates a terrain from an in-memory material
// definition instead of a material file.
func (s *Scene) AddTerrainWithDefinition(def material.Definition) *TerrainView {
	t := terrain.New(s.nextID)
	s.nextID++
	tex := s.resources.LoadTexture(def.HeightMap)
	t.SetMaterial("", material.New(def, tex, s.terrainProgram))
	v := newTerrainView(t)
	s.views = append(s.views, v)
	logger.Info("terrain added",
		zap.Int32("entity", t.EntityID()),
		zap.String("heightmap", def.HeightMap))
	return v
}

// AttachTerrain adds an existing terrain (e.g. one restored by
// Deserialize), resolving its recorded material path.
func (s *Scene) AttachTerrain(t *terrain.Terrain) (*TerrainView, error) {
	if path := t.MaterialPath(); path != "" {
		if err := s.attachMaterial(t, path); err != nil {
			return nil, err
		}
	}
	v := newTerrainView(t)
	s.views = append(s.views, v)
	return v, nil
}

func (s *Scene) attachMaterial(t *terrain.Terrain, materialPath string) error {
	def, err := material.LoadDefinition(filepath.Join(s.resources.Root(), materialPath))
	if err != nil {
		return err
	}
	tex := s.resources.LoadTexture(def.HeightMap)
	t.SetMaterial(materialPath, material.New(def, tex, s.terrainProgram))
	return nil
}

// Views returns the terrain views in the scene.
func (s *Scene) Views() []*TerrainView { return s.views }

// Update advances per-frame state: grass windows follow the camera and
// pending grass meshes are batched and uploaded as they become ready.
func (s *Scene) Update(cameraPos math.Vec3) {
	for _, v := range s.views {
		v.Terrain.UpdateGrass(cameraPos)
		v.pollGrassMeshes(s.resources)
	}
}

// Render draws every terrain and its collected grass batches.
func (s *Scene) Render(viewProj math.Mat4, cameraPos math.Vec3) {
	for _, v := range s.views {
		v.render(viewProj, cameraPos)
		v.renderGrass(s.grassProgram, viewProj, cameraPos)
	}
}

// Pick casts a screen-space ray through every terrain and returns the
// nearest hit.
func (s *Scene) Pick(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) (terrain.RayHit, bool) {
	ray := picking.ScreenToRay(screenX, screenY, viewportW, viewportH, viewProj.Inverse())

	var best terrain.RayHit
	for _, v := range s.views {
		hit := v.Terrain.CastRay(ray.Origin, ray.Direction)
		if hit.Hit && (!best.Hit || hit.Distance < best.Distance) {
			best = hit
		}
	}
	return best, best.Hit
}

// Destroy releases GL resources owned by the scene.
func (s *Scene) Destroy() {
	for _, v := range s.views {
		v.destroy()
	}
	s.views = nil
	s.terrainProgram.Delete()
	s.grassProgram.Delete()
}
