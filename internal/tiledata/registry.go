package tiledata

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoTiles is returned when a tile file defines no tiles.
var ErrNoTiles = errors.New("no tiles defined")

// Registry holds tile definitions indexed by ID.
type Registry struct {
	byID map[int]*TileDef
	all  []TileDef
}

// NewRegistry creates a registry from tile definitions. Later duplicates win.
func NewRegistry(tiles []TileDef) *Registry {
	r := &Registry{
		byID: make(map[int]*TileDef, len(tiles)),
		all:  tiles,
	}
	for i := range tiles {
		r.byID[tiles[i].ID] = &tiles[i]
	}
	return r
}

// LoadRegistry builds a registry from the embedded tiles.json.
func LoadRegistry() (*Registry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	return newCheckedRegistry(tiles, "tiles.json")
}

// LoadRegistryFS builds a registry from a tiles file in fsys.
func LoadRegistryFS(fsys fs.FS, filename string) (*Registry, error) {
	file, err := LoadFS[TilesFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	return newCheckedRegistry(file.Tiles, filename)
}

func newCheckedRegistry(tiles []TileDef, filename string) (*Registry, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoTiles)
	}
	return NewRegistry(tiles), nil
}

// ByID returns the definition for a tile ID, or nil if unknown.
func (r *Registry) ByID(id int) *TileDef {
	return r.byID[id]
}

// All returns all tile definitions in file order.
func (r *Registry) All() []TileDef {
	return r.all
}

// Count returns the number of tile definitions.
func (r *Registry) Count() int {
	return len(r.all)
}
