package skink

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldDef is the on-disk description of a world: tuning values plus the
// geometry painted as rows of runes, top row first.
type WorldDef struct {
	Gravity          float64  `yaml:"gravity"`
	TerminalVelocity float64  `yaml:"terminal_velocity"`
	Grid             []string `yaml:"grid"`
}

// geometryRunes maps the grid characters of a world file to tile types.
// Arrows point the way the tile blocks: '^' stops upward movers.
var geometryRunes = map[rune]GeometryType{
	'.': Empty,
	'#': Full,
	'<': BlocksLeft,
	'>': BlocksRight,
	'^': BlocksUp,
	'v': BlocksDown,
}

func runeForGeometry(gt GeometryType) rune {
	for r, t := range geometryRunes {
		if t == gt {
			return r
		}
	}
	return '.'
}

// ParseWorld decodes a yaml world definition.
func ParseWorld(data []byte) (*WorldDef, error) {
	var def WorldDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("ParseWorld: yaml %w", err)
	}
	if _, err := def.BuildGrid(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadWorldFile reads and decodes a yaml world definition from disk.
func LoadWorldFile(path string) (*WorldDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadWorldFile: %w", err)
	}
	return ParseWorld(data)
}

// BuildGrid converts the painted rows into a geometry grid. Rows must all
// be the same width; unknown runes are an error.
func (def *WorldDef) BuildGrid() (*GeometryGrid, error) {
	height := len(def.Grid)
	width := 0
	if height > 0 {
		width = len([]rune(def.Grid[0]))
	}
	grid := NewGeometryGrid(width, height)
	for y, row := range def.Grid {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("BuildGrid: row %d is %d tiles wide, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			gt, ok := geometryRunes[r]
			if !ok {
				return nil, fmt.Errorf("BuildGrid: unsupported tile %q at %d,%d", r, x, y)
			}
			grid.SetType(x, y, gt)
		}
	}
	return grid, nil
}

// ApplyWorld installs a world definition on the engine: geometry, gravity
// and terminal velocity. Observable from the next tick.
func (en *Engine) ApplyWorld(def *WorldDef) error {
	grid, err := def.BuildGrid()
	if err != nil {
		return err
	}
	en.mu.Lock()
	en.grid = grid
	en.gravity = def.Gravity
	en.terminalVelocity = def.TerminalVelocity
	en.mu.Unlock()
	return nil
}
