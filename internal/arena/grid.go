// Package arena is a small voxel world the character runs in: block grid,
// line traces, projectile flight and the camera/socket rig.
package arena

import (
	"fmt"
	"sync"
)

const (
	ChunkWidth    = 16
	SectionHeight = 16
	MinZ          = -16
	MaxZ          = 63
	SectionCount  = (MaxZ - MinZ + 1) / SectionHeight
	cellsPerSect  = ChunkWidth * ChunkWidth * SectionHeight
)

type Material uint8

const (
	Air Material = iota
	Floor
	Wall
	Crate
	Glass
)

var materials = []struct {
	name  string
	solid bool
}{
	Air:   {"air", false},
	Floor: {"floor", true},
	Wall:  {"wall", true},
	Crate: {"crate", true},
	Glass: {"glass", false},
}

func (m Material) String() string {
	if int(m) < len(materials) {
		return materials[m].name
	}
	return fmt.Sprintf("material(%d)", m)
}

func (m Material) Solid() bool {
	return int(m) < len(materials) && materials[m].solid
}

func ParseMaterial(s string) (Material, error) {
	for i, def := range materials {
		if def.name == s {
			return Material(i), nil
		}
	}
	return Air, fmt.Errorf("unknown material %q", s)
}

type ChunkPos struct {
	X int32
	Y int32
}

type section struct {
	cells []Material
}

type chunk struct {
	sections [SectionCount]*section
}

// Grid stores cells in 16x16 columns that are allocated on first write.
// Coordinates are cell indices with Z up.
type Grid struct {
	mu     sync.RWMutex
	chunks map[ChunkPos]*chunk
}

func NewGrid() *Grid {
	return &Grid{chunks: make(map[ChunkPos]*chunk)}
}

func (g *Grid) SetBlock(x, y, z int, m Material) bool {
	if z < MinZ || z > MaxZ {
		return false
	}
	pos, sect, idx := locate(x, y, z)

	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.chunks[pos]
	if !ok {
		if m == Air {
			return true
		}
		c = &chunk{}
		g.chunks[pos] = c
	}
	s := c.sections[sect]
	if s == nil {
		if m == Air {
			return true
		}
		s = &section{cells: make([]Material, cellsPerSect)}
		c.sections[sect] = s
	}
	s.cells[idx] = m
	return true
}

// Block returns the cell's material. Cells outside the height range report
// false, unwritten cells are air.
func (g *Grid) Block(x, y, z int) (Material, bool) {
	if z < MinZ || z > MaxZ {
		return Air, false
	}
	pos, sect, idx := locate(x, y, z)

	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.chunks[pos]
	if !ok || c.sections[sect] == nil {
		return Air, true
	}
	return c.sections[sect].cells[idx], true
}

func (g *Grid) IsSolid(x, y, z int) bool {
	m, ok := g.Block(x, y, z)
	return ok && m.Solid()
}

// Fill sets every cell of the inclusive box and returns how many were in
// range.
func (g *Grid) Fill(min, max [3]int, m Material) int {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	n := 0
	for x := min[0]; x <= max[0]; x++ {
		for y := min[1]; y <= max[1]; y++ {
			for z := min[2]; z <= max[2]; z++ {
				if g.SetBlock(x, y, z, m) {
					n++
				}
			}
		}
	}
	return n
}

func (g *Grid) LoadedChunkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.chunks)
}

func locate(x, y, z int) (ChunkPos, int, int) {
	pos := ChunkPos{X: int32(floorDiv(x, ChunkWidth)), Y: int32(floorDiv(y, ChunkWidth))}
	lx := floorMod(x, ChunkWidth)
	ly := floorMod(y, ChunkWidth)
	sect := (z - MinZ) / SectionHeight
	lz := (z - MinZ) % SectionHeight
	return pos, sect, lz*ChunkWidth*ChunkWidth + ly*ChunkWidth + lx
}

func floorDiv(v, d int) int {
	q := v / d
	if v < 0 && v%d != 0 {
		q--
	}
	return q
}

func floorMod(v, d int) int {
	m := v % d
	if m < 0 {
		m += d
	}
	return m
}
