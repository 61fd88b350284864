package terrain

import (
	stdmath "math"
	"math/rand"

	"github.com/Faultbox/veld/pkg/math"
)

// Grass paging constants. A window of GrassCellsWidth x GrassCellsHeight
// cells of GrassCellSize world units each follows the camera.
const (
	GrassCellSize    = 10.0
	GrassCellsWidth  = 10
	GrassCellsHeight = 10

	// grassUpdateThreshold is how far the camera must move before the cell
	// window is recomputed.
	grassUpdateThreshold = 1.0
)

// RotationMode selects how grass instances are oriented inside a cell.
type RotationMode int32

// Rotation modes.
const (
	RotationNone RotationMode = iota
	RotationYAxis
	RotationAllRandom
)

// GrassType describes one kind of grass placed on the terrain.
type GrassType struct {
	ModelPath string
	Density   int32
	Distance  float32
	Rotation  RotationMode
}

// CellKey identifies a grass cell by its integer cell coordinates.
type CellKey struct {
	X, Z int32
}

// GrassCell holds the instance transforms generated for one cell, one slice
// per grass type. Cells are pooled: eviction returns them to a free list and
// refills reuse the backing arrays.
type GrassCell struct {
	Key     CellKey
	Patches [][]math.Mat4
}

type cellBounds struct {
	fromX, toX int32
	fromZ, toZ int32
	valid      bool
}

func (b cellBounds) contains(k CellKey) bool {
	return b.valid &&
		k.X >= b.fromX && k.X < b.toX &&
		k.Z >= b.fromZ && k.Z < b.toZ
}

// SetGrassTypes replaces the grass type list and invalidates all cells.
func (t *Terrain) SetGrassTypes(types []GrassType) {
	t.grassTypes = types
	t.invalidateGrass()
}

// GrassTypes returns the configured grass types.
func (t *Terrain) GrassTypes() []GrassType {
	return t.grassTypes
}

// AddGrassType appends a grass type and invalidates all cells.
func (t *Terrain) AddGrassType(gt GrassType) {
	t.grassTypes = append(t.grassTypes, gt)
	t.invalidateGrass()
}

func (t *Terrain) invalidateGrass() {
	for _, c := range t.grassCells {
		t.grassFree = append(t.grassFree, c)
	}
	t.grassCells = make(map[CellKey]*GrassCell)
	t.grassBounds = cellBounds{}
	t.grassDirty = true
}

// UpdateGrass repositions the cell window around the camera, evicting cells
// that fell out of it and filling the ones that entered. Cell contents are
// fully determined by cell coordinates, so a cell regenerated after eviction
// is identical to its first generation.
func (t *Terrain) UpdateGrass(cameraWorld math.Vec3) {
	t.pollMaterial()
	if len(t.grassTypes) == 0 || t.field.hm == nil {
		return
	}
	if !t.grassDirty && cameraWorld.Distance(t.grassCamera) < grassUpdateThreshold {
		return
	}
	t.grassCamera = cameraWorld
	t.grassDirty = false

	local := t.matrix.FastInverse().TransformPoint(cameraWorld)
	baseX := int32(stdmath.Floor(float64(local.X/GrassCellSize))) - GrassCellsWidth/2
	baseZ := int32(stdmath.Floor(float64(local.Z/GrassCellSize))) - GrassCellsHeight/2
	// The window never reaches below the terrain origin.
	baseX = max(baseX, 0)
	baseZ = max(baseZ, 0)
	bounds := cellBounds{
		fromX: baseX, toX: baseX + GrassCellsWidth,
		fromZ: baseZ, toZ: baseZ + GrassCellsHeight,
		valid: true,
	}

	for k, c := range t.grassCells {
		if !bounds.contains(k) {
			t.grassFree = append(t.grassFree, c)
			delete(t.grassCells, k)
		}
	}

	for qz := bounds.fromZ; qz < bounds.toZ; qz++ {
		for qx := bounds.fromX; qx < bounds.toX; qx++ {
			key := CellKey{X: qx, Z: qz}
			if _, ok := t.grassCells[key]; ok {
				continue
			}
			cell := t.takeCell()
			cell.Key = key
			t.fillGrassCell(cell)
			t.grassCells[key] = cell
		}
	}
	t.grassBounds = bounds
}

// takeCell pops a pooled cell or allocates a fresh one. The pool only grows;
// steady-state camera movement recycles without allocating.
func (t *Terrain) takeCell() *GrassCell {
	if n := len(t.grassFree); n > 0 {
		c := t.grassFree[n-1]
		t.grassFree = t.grassFree[:n-1]
		return c
	}
	return &GrassCell{}
}

// fillGrassCell generates instance transforms for every grass type in the
// cell. Each type draws from its own generator seeded by the cell
// coordinates and type index, so placement never depends on visit order.
func (t *Terrain) fillGrassCell(cell *GrassCell) {
	if cap(cell.Patches) < len(t.grassTypes) {
		cell.Patches = make([][]math.Mat4, len(t.grassTypes))
	}
	cell.Patches = cell.Patches[:len(t.grassTypes)]

	cellX := float32(cell.Key.X) * GrassCellSize
	cellZ := float32(cell.Key.Z) * GrassCellSize
	seed := int64(cell.Key.X) + int64(cell.Key.Z)*GrassCellsWidth

	for ti, gt := range t.grassTypes {
		patch := cell.Patches[ti][:0]
		if gt.Density > 0 {
			// Each type gets its own stream so equal densities do not
			// stack blades on identical jittered positions.
			rng := rand.New(rand.NewSource(seed + int64(ti)<<32))
			step := float32(GrassCellSize) / (3 * float32(gt.Density))
			for dx := float32(0); dx < GrassCellSize; dx += step {
				for dz := float32(0); dz < GrassCellSize; dz += step {
					x := cellX + dx + step*jitter(rng)
					z := cellZ + dz + step*jitter(rng)
					y := t.field.Height(x/t.xzScale, z/t.xzScale)
					m := t.grassRotation(gt.Rotation, rng)
					m.SetTranslation(math.Vec3{X: x, Y: y, Z: z})
					patch = append(patch, t.matrix.Mul(m))
				}
			}
		}
		cell.Patches[ti] = patch
	}
}

// jitter returns a value in [-0.5, 0.5) in hundredths.
func jitter(rng *rand.Rand) float32 {
	return float32(rng.Intn(100)-50) / 100
}

func (t *Terrain) grassRotation(mode RotationMode, rng *rand.Rand) math.Mat4 {
	switch mode {
	case RotationYAxis:
		return math.RotateY(float32(rng.Float64() * 2 * stdmath.Pi))
	case RotationAllRandom:
		axis := math.Vec3{
			X: float32(rng.Float64()*2 - 1),
			Y: float32(rng.Float64()*2 - 1),
			Z: float32(rng.Float64()*2 - 1),
		}.Normalize()
		if axis == (math.Vec3{}) {
			axis = math.Vec3{Y: 1}
		}
		angle := float32(rng.Float64() * 2 * stdmath.Pi)
		return math.QuatFromAxisAngle(axis, angle).ToMat4()
	default:
		return math.Identity()
	}
}

// GrassInfo is one drawable batch of grass instances: up to CopyCount world
// transforms of a single type.
type GrassInfo struct {
	TypeIndex  int
	Transforms []math.Mat4
}

// CollectGrass gathers the visible grass batches. Per-type view distance is
// applied here rather than during fill, so culling never perturbs the
// deterministic cell contents. Transforms are grouped in chunks of CopyCount
// to match batched grass meshes; the final chunk of a cell may be partial.
func (t *Terrain) CollectGrass(cameraWorld math.Vec3) []GrassInfo {
	if len(t.grassCells) == 0 {
		return nil
	}
	local := t.matrix.FastInverse().TransformPoint(cameraWorld)

	var out []GrassInfo
	for z := t.grassBounds.fromZ; z < t.grassBounds.toZ; z++ {
		for x := t.grassBounds.fromX; x < t.grassBounds.toX; x++ {
			cell, ok := t.grassCells[CellKey{X: x, Z: z}]
			if !ok {
				continue
			}
			center := math.Vec3{
				X: (float32(cell.Key.X) + 0.5) * GrassCellSize,
				Y: local.Y,
				Z: (float32(cell.Key.Z) + 0.5) * GrassCellSize,
			}
			dist := local.Distance(center)
			for ti := range cell.Patches {
				if ti >= len(t.grassTypes) || dist > t.grassTypes[ti].Distance {
					continue
				}
				patch := cell.Patches[ti]
				for off := 0; off < len(patch); off += CopyCount {
					end := off + CopyCount
					if end > len(patch) {
						end = len(patch)
					}
					out = append(out, GrassInfo{TypeIndex: ti, Transforms: patch[off:end]})
				}
			}
		}
	}
	return out
}
