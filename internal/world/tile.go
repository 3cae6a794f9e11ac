// Package world provides the tile world built on a square grid.
package world

import "strconv"

// Tile represents a single world tile.
type Tile struct {
	ID int
}

var (
	// TileAir is the zero tile every new world starts with.
	TileAir = Tile{ID: 0}
	// TileStone fills the interior.
	TileStone = Tile{ID: 1}
	// TileGrass lines the border.
	TileGrass = Tile{ID: 2}
)

// String returns the tile's ID as printed in world output.
func (t Tile) String() string {
	return strconv.Itoa(t.ID)
}
