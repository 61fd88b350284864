package terrain

import (
	"go.uber.org/zap"

	"github.com/Faultbox/veld/internal/logger"
	"github.com/Faultbox/veld/pkg/math"
)

// Terrain is one height-field terrain entity. Geometry detail is selected
// per frame by walking the quadtree; the grass window and ray casting share
// the same height field.
type Terrain struct {
	entityID  int32
	layerMask uint64
	matrix    math.Mat4

	xzScale float32
	yScale  float32

	materialPath string
	material     Material

	field    HeightField
	width    int
	height   int
	rootSize float32
	tree     *Quadtree
	geometry *PatchGeometry

	brushPosition math.Vec3
	brushSize     float32

	grassTypes  []GrassType
	grassCells  map[CellKey]*GrassCell
	grassFree   []*GrassCell
	grassBounds cellBounds
	grassCamera math.Vec3
	grassDirty  bool
}

// New creates a terrain with unit scales and an identity transform.
func New(entityID int32) *Terrain {
	return &Terrain{
		entityID:   entityID,
		layerMask:  1,
		matrix:     math.Identity(),
		xzScale:    1,
		yScale:     1,
		brushSize:  1,
		geometry:   BuildPatchGeometry(),
		grassCells: make(map[CellKey]*GrassCell),
		grassDirty: true,
	}
}

// EntityID returns the owning entity id.
func (t *Terrain) EntityID() int32 { return t.entityID }

// LayerMask returns the render layer mask.
func (t *Terrain) LayerMask() uint64 { return t.layerMask }

// SetLayerMask sets the render layer mask.
func (t *Terrain) SetLayerMask(mask uint64) { t.layerMask = mask }

// Matrix returns the world transform.
func (t *Terrain) Matrix() math.Mat4 { return t.matrix }

// SetMatrix sets the world transform. Grass transforms embed it, so all
// cells are regenerated on the next update.
func (t *Terrain) SetMatrix(m math.Mat4) {
	t.matrix = m
	t.invalidateGrass()
}

// XZScale returns the horizontal texel size in world units.
func (t *Terrain) XZScale() float32 { return t.xzScale }

// SetXZScale sets the horizontal texel size.
func (t *Terrain) SetXZScale(s float32) {
	t.xzScale = s
	t.invalidateGrass()
}

// YScale returns the world height of a full-range height sample.
func (t *Terrain) YScale() float32 { return t.yScale }

// SetYScale sets the height scale.
func (t *Terrain) SetYScale(s float32) {
	t.yScale = s
	t.field.yScale = s
	t.invalidateGrass()
}

// Size returns the height map dimensions in texels, zero before the
// material is ready.
func (t *Terrain) Size() (width, height int) {
	return t.width, t.height
}

// Material returns the assigned material, nil before SetMaterial.
func (t *Terrain) Material() Material { return t.material }

// Geometry returns the shared unit patch mesh.
func (t *Terrain) Geometry() *PatchGeometry { return t.geometry }

// MaterialPath returns the configured material path.
func (t *Terrain) MaterialPath() string { return t.materialPath }

// SetMaterial assigns the terrain material. The height field and quadtree
// are rebuilt once the material reports ready.
func (t *Terrain) SetMaterial(path string, m Material) {
	t.materialPath = path
	t.material = m
	t.field = HeightField{}
	t.tree = nil
	t.width = 0
	t.height = 0
	t.rootSize = 0
	t.invalidateGrass()
}

// SetBrush positions the editing brush highlight.
func (t *Terrain) SetBrush(pos math.Vec3, size float32) {
	t.brushPosition = pos
	t.brushSize = size
}

// pollMaterial picks up the height map once the material finishes loading.
func (t *Terrain) pollMaterial() {
	if t.tree != nil || t.material == nil || !t.material.IsReady() {
		return
	}
	hm := t.material.HeightMap()
	if hm == nil {
		return
	}
	t.field = NewHeightField(hm, t.yScale)
	t.width = hm.Width
	t.height = hm.Height
	t.rootSize = float32(hm.Width)
	t.tree = BuildQuadtree(t.rootSize)
	t.grassDirty = true
	logger.Debug("terrain height field ready",
		zap.Int32("entity", t.entityID),
		zap.Int("width", hm.Width),
		zap.Int("height", hm.Height))
}

// HeightAt returns the terrain height at integer texel coordinates.
func (t *Terrain) HeightAt(x, z int) float32 {
	return t.field.HeightAt(x, z)
}

// Height returns the interpolated terrain height at a terrain-local world
// position.
func (t *Terrain) Height(x, z float32) float32 {
	return t.field.Height(x/t.xzScale, z/t.xzScale)
}

// Render draws the terrain for the given world-space camera position. Nodes
// outside their detail radius are drawn by their parent at lower detail;
// nothing is drawn until the material is ready.
func (t *Terrain) Render(device Device, cameraWorld math.Vec3) {
	t.pollMaterial()
	if t.tree == nil || !t.material.IsReady() {
		return
	}
	shader := t.material.Shader()

	// LOD selection happens in height-map texel units.
	localCam := t.matrix.FastInverse().TransformPoint(cameraWorld).Scale(1 / t.xzScale)
	shader.SetUniform3f("brush_position", t.brushPosition)
	shader.SetUniform1f("brush_size", t.brushSize)
	shader.SetUniform1f("map_size", t.rootSize)
	shader.SetUniform3f("camera_pos", localCam)

	t.renderNode(t.tree.Root(), localCam, shader, device)
}
