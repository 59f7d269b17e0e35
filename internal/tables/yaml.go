package tables

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource serves a Set decoded from a YAML document.
type YAMLSource struct {
	set     Set
	weapons map[string]int
}

func NewMemorySource(set Set) *YAMLSource {
	src := &YAMLSource{set: set, weapons: make(map[string]int, len(set.Weapons))}
	for i, row := range set.Weapons {
		if _, dup := src.weapons[row.Name]; dup {
			continue
		}
		src.weapons[row.Name] = i
	}
	return src
}

func ParseYAML(data []byte) (*YAMLSource, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	for i, row := range set.Aiming {
		if row.Name == "" {
			return nil, fmt.Errorf("aiming row %d has no name", i)
		}
	}
	for i, row := range set.Weapons {
		if row.Name == "" {
			return nil, fmt.Errorf("weapon row %d has no name", i)
		}
	}
	return NewMemorySource(set), nil
}

func LoadYAML(path string) (*YAMLSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

func (s *YAMLSource) Set() Set {
	return s.set
}

func (s *YAMLSource) AimingRows(_ context.Context) ([]AimingRow, error) {
	out := make([]AimingRow, len(s.set.Aiming))
	copy(out, s.set.Aiming)
	return out, nil
}

func (s *YAMLSource) WeaponNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.set.Weapons))
	for _, row := range s.set.Weapons {
		names = append(names, row.Name)
	}
	return names, nil
}

func (s *YAMLSource) WeaponMode(_ context.Context, name string) (WeaponModeRow, error) {
	i, ok := s.weapons[name]
	if !ok {
		return WeaponModeRow{}, fmt.Errorf("%w: weapon %q", ErrRowNotFound, name)
	}
	return s.set.Weapons[i], nil
}
