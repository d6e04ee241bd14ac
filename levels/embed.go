// Package levels holds the embedded level files. A level is a grid of tile
// layers plus the entities placed on it; positions are in world pixels.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

// LayerMeta configures one tile layer. Physics layers get merged static
// colliders; Color is a CSS color name for the placeholder tiles.
type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parseLevel(data)
}

// LoadLevel reads name from disk if it exists there, otherwise from the
// embedded levels.
func LoadLevel(name string) (*Level, error) {
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".json"
	}
	if data, err := os.ReadFile(filepath.Join("levels", base)); err == nil {
		return parseLevel(data)
	}
	return LoadLevelFromFS(base)
}

func parseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level: invalid size %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("level: layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}
