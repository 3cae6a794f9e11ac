package world

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/tilegrid/internal/grid"
	"github.com/samdwyer/tilegrid/internal/telemetry"
)

// DefaultSize is the side length of the demo world.
const DefaultSize = 50

// World is a square tile map.
type World struct {
	Size int
	Grid *grid.Grid2D[Tile]
}

// NewWorld creates a world of the given size filled with air.
func NewWorld(size int) (*World, error) {
	g, err := grid.New2D[Tile](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	return &World{Size: size, Grid: g}, nil
}

// Generate lays grass along the border and stone everywhere inside it.
func (w *World) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			tile := TileStone
			if w.isBorder(x, y) {
				tile = TileGrass
			}
			if err := w.Grid.Set(x, y, tile); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "tile write failed")
				return fmt.Errorf("failed to generate world: %w", err)
			}
		}
	}

	counts := w.Counts()
	span.SetAttributes(
		attribute.Int("world.size", w.Size),
		attribute.Int("world.grass_tiles", counts[TileGrass]),
		attribute.Int("world.stone_tiles", counts[TileStone]),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

func (w *World) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == w.Size-1 || y == w.Size-1
}

// Tile returns the tile at the given position.
func (w *World) Tile(x, y int) (Tile, error) {
	return w.Grid.Get(x, y)
}

// SetTile places a tile at the given position.
func (w *World) SetTile(x, y int, t Tile) error {
	return w.Grid.Set(x, y, t)
}

// Counts returns how many cells hold each tile.
func (w *World) Counts() map[Tile]int {
	counts := make(map[Tile]int)
	w.Grid.Each(func(_, _ int, t Tile) {
		counts[t]++
	})
	return counts
}

// WriteTo prints one line per row with the tile IDs of that row concatenated.
func (w *World) WriteTo(out io.Writer) (int64, error) {
	bw := bufio.NewWriter(out)
	var total int64

	for _, row := range w.Grid.Rows() {
		for _, t := range row {
			n, err := bw.WriteString(t.String())
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	return total, bw.Flush()
}
