package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// Preset is a named gate budget offered by the level select menu.
type Preset struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Length int    `json:"length"`
}

type presetFile struct {
	Presets []Preset `json:"presets"`
}

func LoadPresets() ([]Preset, error) {
	data, err := fs.ReadFile(LevelsFS, "presets.json")
	if err != nil {
		return nil, fmt.Errorf("levels: read presets: %w", err)
	}
	var f presetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: unmarshal presets: %w", err)
	}
	for _, p := range f.Presets {
		if p.Length < 1 {
			return nil, fmt.Errorf("levels: preset %s: %w", p.Name, ErrInvalidGateCount)
		}
	}
	return f.Presets, nil
}
