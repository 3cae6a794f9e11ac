package tiledata

import (
	"github.com/gdamore/tcell/v2"
)

// TileDef describes how a tile ID is named and drawn.
type TileDef struct {
	ID    int    `json:"id"`    // Tile ID as stored in the world grid
	Name  string `json:"name"`  // Display name (e.g., "Grass")
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code (e.g., "#4CAF50")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, white if it cannot be parsed.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
