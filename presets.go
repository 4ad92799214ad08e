package skink

import (
	"encoding/json"
	"fmt"
	"os"
)

// BodyData is the serialized form of one stock Body.
type BodyData struct {
	Id       EntityId `json:"id"`
	Category Category `json:"category"`
	Loc      Vec2     `json:"loc"`
	Speed    Vec2     `json:"speed"`
	Half     Vec2     `json:"half"`
	Gravity  bool     `json:"gravity"`
	Pushed   bool     `json:"pushed"`
}

// PresetData is a snapshot of an engine: tuning, geometry and every stock
// body. Host entities that implement DynamicEntity themselves are opaque
// to the engine and are skipped on save.
type PresetData struct {
	Gravity          float64    `json:"gravity"`
	TerminalVelocity float64    `json:"terminal_velocity"`
	Grid             []string   `json:"grid"`
	Bodies           []BodyData `json:"bodies"`
}

// SavePreset writes the engine's current state to a json file.
func SavePreset(en *Engine, filename string) error {
	en.mu.Lock()
	data := PresetData{
		Gravity:          en.gravity,
		TerminalVelocity: en.terminalVelocity,
		Grid:             encodeGridRows(en.grid),
	}
	for _, it := range en.master {
		b, ok := it.entity.(*Body)
		if !ok {
			continue
		}
		data.Bodies = append(data.Bodies, BodyData{
			Id:       it.id,
			Category: it.category,
			Loc:      b.loc,
			Speed:    b.speed,
			Half:     b.half,
			Gravity:  b.gravity,
			Pushed:   b.pushed,
		})
	}
	en.mu.Unlock()

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("SavePreset: %w", err)
	}
	if err := os.WriteFile(filename, out, 0644); err != nil {
		return fmt.Errorf("SavePreset: %w", err)
	}
	return nil
}

// LoadPreset builds a fresh engine from a saved snapshot. Restored bodies
// get new handles; the saved ids are from the session that wrote the file.
func LoadPreset(filename string) (*Engine, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("LoadPreset: %w", err)
	}
	var data PresetData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("LoadPreset: json %w", err)
	}

	def := WorldDef{
		Gravity:          data.Gravity,
		TerminalVelocity: data.TerminalVelocity,
		Grid:             data.Grid,
	}
	en := NewEngine(0, 0)
	if err := en.ApplyWorld(&def); err != nil {
		return nil, fmt.Errorf("LoadPreset: %w", err)
	}

	for _, bd := range data.Bodies {
		if !bd.Category.valid() {
			return nil, fmt.Errorf("LoadPreset: body %s has invalid category %d", bd.Id, int(bd.Category))
		}
		b := NewBody(bd.Loc, bd.Half)
		b.SetSpeed(bd.Speed)
		b.SetAffectedByGravity(bd.Gravity)
		b.SetPushedByGeometry(bd.Pushed)
		en.AddWithCategory(b, bd.Category)
	}
	return en, nil
}

func encodeGridRows(grid *GeometryGrid) []string {
	rows := make([]string, grid.Height())
	for y := 0; y < grid.Height(); y++ {
		row := make([]rune, grid.Width())
		for x := 0; x < grid.Width(); x++ {
			row[x] = runeForGeometry(grid.TypeAt(x, y))
		}
		rows[y] = string(row)
	}
	return rows
}
