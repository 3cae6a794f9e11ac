package grid

// Grid2D is an N×N grid of T stored in row-major order.
type Grid2D[T any] struct {
	size  int
	cells []T
}

// New2D creates an n×n grid with every cell set to T's zero value.
func New2D[T any](n int) (*Grid2D[T], error) {
	cells, err := cellCount(n, 2)
	if err != nil {
		return nil, err
	}
	return &Grid2D[T]{size: n, cells: make([]T, cells)}, nil
}

// MustNew2D is like New2D but panics on an invalid size.
func MustNew2D[T any](n int) *Grid2D[T] {
	g, err := New2D[T](n)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the length of each side.
func (g *Grid2D[T]) Size() int {
	return g.size
}

// InBounds returns true if (x, y) addresses a cell.
func (g *Grid2D[T]) InBounds(x, y int) bool {
	return inRange(g.size, x, y)
}

func (g *Grid2D[T]) index(x, y int) int {
	return y*g.size + x
}

// Get returns the value at (x, y).
func (g *Grid2D[T]) Get(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, &BoundsError{Coords: []int{x, y}, Size: g.size}
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at (x, y).
func (g *Grid2D[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return &BoundsError{Coords: []int{x, y}, Size: g.size}
	}
	g.cells[g.index(x, y)] = v
	return nil
}

// Fill sets every cell to v.
func (g *Grid2D[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Each calls fn for every cell, row by row.
func (g *Grid2D[T]) Each(fn func(x, y int, v T)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// Rows returns a copy of the grid as rows indexed by y.
func (g *Grid2D[T]) Rows() [][]T {
	rows := make([][]T, g.size)
	for y := range rows {
		rows[y] = make([]T, g.size)
		copy(rows[y], g.cells[y*g.size:(y+1)*g.size])
	}
	return rows
}
