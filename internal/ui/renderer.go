package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilegrid/internal/tiledata"
	"github.com/samdwyer/tilegrid/internal/world"
)

// Canvas is the drawing surface a Renderer writes to. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

var _ Canvas = (*Screen)(nil)

// Renderer draws a world to a canvas.
type Renderer struct {
	canvas Canvas
	tiles  *tiledata.Registry
}

// NewRenderer creates a renderer that styles tiles from the registry.
func NewRenderer(canvas Canvas, tiles *tiledata.Registry) *Renderer {
	return &Renderer{canvas: canvas, tiles: tiles}
}

// Render draws every tile, then the status line below the world.
func (r *Renderer) Render(w *world.World, status string) error {
	r.canvas.Clear()

	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			tile, err := w.Tile(x, y)
			if err != nil {
				return err
			}
			glyph, style := r.tileAppearance(tile)
			r.canvas.SetContent(x, y, glyph, style)
		}
	}

	r.RenderMessage(status, w.Size+1)
	r.canvas.Show()
	return nil
}

// tileAppearance looks up a tile's glyph and style; unknown IDs draw as their last digit.
func (r *Renderer) tileAppearance(tile world.Tile) (rune, tcell.Style) {
	if def := r.tiles.ByID(tile.ID); def != nil {
		return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
	}
	s := tile.String()
	return rune(s[len(s)-1]), tcell.StyleDefault.Foreground(tcell.ColorRed)
}

// RenderMessage writes a line of text starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
