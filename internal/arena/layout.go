package arena

import "fmt"

type Box struct {
	Min      [3]int `yaml:"min"`
	Max      [3]int `yaml:"max"`
	Material string `yaml:"material"`
}

// Layout describes an arena in cells: a square floor slab plus boxes.
type Layout struct {
	CellSize   float64    `yaml:"cell_size"`
	FloorSize  int        `yaml:"floor_size"`
	FloorLevel int        `yaml:"floor_level"`
	Boxes      []Box      `yaml:"boxes"`
	Spawn      [3]float64 `yaml:"spawn"`
}

func DefaultLayout() Layout {
	return Layout{
		CellSize:   100,
		FloorSize:  32,
		FloorLevel: -1,
		Boxes: []Box{
			{Min: [3]int{20, -10, 0}, Max: [3]int{20, 10, 4}, Material: "wall"},
			{Min: [3]int{8, 3, 0}, Max: [3]int{9, 4, 0}, Material: "crate"},
		},
		Spawn: [3]float64{50, 50, 0},
	}
}

// Build fills a new grid with the layout.
func (l Layout) Build() (*Grid, error) {
	g := NewGrid()
	if l.FloorSize > 0 {
		g.Fill([3]int{-l.FloorSize, -l.FloorSize, l.FloorLevel}, [3]int{l.FloorSize, l.FloorSize, l.FloorLevel}, Floor)
	}
	for i, b := range l.Boxes {
		m, err := ParseMaterial(b.Material)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		g.Fill(b.Min, b.Max, m)
	}
	return g, nil
}
