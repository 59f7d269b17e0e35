package arena

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tracer walks the grid cell by cell along a segment. World units are
// CellSize per cell.
type Tracer struct {
	grid     *Grid
	cellSize float64
}

func NewTracer(grid *Grid, cellSize float64) *Tracer {
	if cellSize <= 0 {
		cellSize = 100
	}
	return &Tracer{grid: grid, cellSize: cellSize}
}

// LineTrace returns the point where the segment first enters a solid cell.
func (t *Tracer) LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	if t.grid == nil {
		return mgl64.Vec3{}, false
	}
	seg := end.Sub(start)
	length := seg.Len()
	if length < 1e-9 {
		return mgl64.Vec3{}, false
	}
	dir := seg.Mul(1 / length)

	// cell space
	o := start.Mul(1 / t.cellSize)
	maxDist := length / t.cellSize

	x := int(math.Floor(o.X()))
	y := int(math.Floor(o.Y()))
	z := int(math.Floor(o.Z()))

	stepX, tMaxX, tDeltaX := ddaAxis(o.X(), dir.X(), x)
	stepY, tMaxY, tDeltaY := ddaAxis(o.Y(), dir.Y(), y)
	stepZ, tMaxZ, tDeltaZ := ddaAxis(o.Z(), dir.Z(), z)

	distance := 0.0
	for distance <= maxDist {
		if t.grid.IsSolid(x, y, z) {
			return start.Add(dir.Mul(distance * t.cellSize)), true
		}
		switch {
		case tMaxX <= tMaxY && tMaxX <= tMaxZ:
			x += stepX
			distance = tMaxX
			tMaxX += tDeltaX
		case tMaxY <= tMaxX && tMaxY <= tMaxZ:
			y += stepY
			distance = tMaxY
			tMaxY += tDeltaY
		default:
			z += stepZ
			distance = tMaxZ
			tMaxZ += tDeltaZ
		}
		if z > MaxZ+1 && stepZ >= 0 || z < MinZ-1 && stepZ <= 0 {
			break
		}
	}
	return mgl64.Vec3{}, false
}

func ddaAxis(origin, dir float64, cell int) (step int, tMax float64, tDelta float64) {
	if math.Abs(dir) < 1e-12 {
		return 0, math.Inf(1), math.Inf(1)
	}
	if dir > 0 {
		step = 1
		tMax = (float64(cell+1) - origin) / dir
		tDelta = 1.0 / dir
		return
	}
	step = -1
	inv := -dir
	tMax = (origin - float64(cell)) / inv
	tDelta = 1.0 / inv
	return
}
