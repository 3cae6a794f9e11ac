package grid

// Grid3D is an N×N×N grid of T. Cells are laid out z-major, then y, then x.
type Grid3D[T any] struct {
	size  int
	cells []T
}

// New3D creates an n×n×n grid with every cell set to T's zero value.
func New3D[T any](n int) (*Grid3D[T], error) {
	cells, err := cellCount(n, 3)
	if err != nil {
		return nil, err
	}
	return &Grid3D[T]{size: n, cells: make([]T, cells)}, nil
}

// MustNew3D is like New3D but panics on an invalid size.
func MustNew3D[T any](n int) *Grid3D[T] {
	g, err := New3D[T](n)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the length of each side.
func (g *Grid3D[T]) Size() int {
	return g.size
}

// InBounds returns true if (x, y, z) addresses a cell.
func (g *Grid3D[T]) InBounds(x, y, z int) bool {
	return inRange(g.size, x, y, z)
}

func (g *Grid3D[T]) index(x, y, z int) int {
	return (z*g.size+y)*g.size + x
}

// Get returns the value at (x, y, z).
func (g *Grid3D[T]) Get(x, y, z int) (T, error) {
	if !g.InBounds(x, y, z) {
		var zero T
		return zero, &BoundsError{Coords: []int{x, y, z}, Size: g.size}
	}
	return g.cells[g.index(x, y, z)], nil
}

// Set overwrites the cell at (x, y, z).
func (g *Grid3D[T]) Set(x, y, z int, v T) error {
	if !g.InBounds(x, y, z) {
		return &BoundsError{Coords: []int{x, y, z}, Size: g.size}
	}
	g.cells[g.index(x, y, z)] = v
	return nil
}

// Fill sets every cell to v.
func (g *Grid3D[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Each calls fn for every cell, layer by layer.
func (g *Grid3D[T]) Each(fn func(x, y, z int, v T)) {
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				fn(x, y, z, g.cells[g.index(x, y, z)])
			}
		}
	}
}

// Layer returns a copy of the z slice as a 2D grid.
func (g *Grid3D[T]) Layer(z int) (*Grid2D[T], error) {
	if z < 0 || z >= g.size {
		return nil, &BoundsError{Coords: []int{z}, Size: g.size}
	}
	layer := &Grid2D[T]{size: g.size, cells: make([]T, g.size*g.size)}
	start := z * g.size * g.size
	copy(layer.cells, g.cells[start:start+g.size*g.size])
	return layer, nil
}
