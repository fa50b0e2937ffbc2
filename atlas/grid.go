package atlas

import (
	"image"
)

// GridAllocator hands out uniform tiles in row-major order.
type GridAllocator struct {
	tile    image.Point // tile size
	spacing image.Point // gap between tiles
	cols    int
	rows    int
	next    int // next cell index
}

// NewGridAllocator creates a grid of tile-sized cells separated by
// spacing within a width x height texture. A tile that does not fit
// yields a grid with zero capacity.
func NewGridAllocator(width, height int, tile, spacing image.Point) *GridAllocator {
	g := &GridAllocator{tile: tile, spacing: spacing}
	if cw, ch := tile.X+spacing.X, tile.Y+spacing.Y; tile.X > 0 && tile.Y > 0 && cw > 0 && ch > 0 {
		g.cols = width / cw
		g.rows = height / ch
	}
	return g
}

// Allocate returns the top-left corner of the next free cell.
// Returns false if the grid is full.
func (g *GridAllocator) Allocate() (image.Point, bool) {
	if g.next >= g.Capacity() {
		return image.Point{}, false
	}
	col := g.next % g.cols
	row := g.next / g.cols
	g.next++
	return image.Pt(col*(g.tile.X+g.spacing.X), row*(g.tile.Y+g.spacing.Y)), true
}

// Reset clears all allocations.
func (g *GridAllocator) Reset() {
	g.next = 0
}

// Capacity returns the maximum number of cells that can be allocated.
func (g *GridAllocator) Capacity() int {
	return g.cols * g.rows
}

// Allocated returns the number of cells currently allocated.
func (g *GridAllocator) Allocated() int {
	return g.next
}

// Remaining returns the number of cells still available.
func (g *GridAllocator) Remaining() int {
	return g.Capacity() - g.next
}

// IsFull returns true if no more cells can be allocated.
func (g *GridAllocator) IsFull() bool {
	return g.next >= g.Capacity()
}

// TileSize returns the size of each cell.
func (g *GridAllocator) TileSize() image.Point {
	return g.tile
}

// GridDimensions returns the number of columns and rows.
func (g *GridAllocator) GridDimensions() (cols, rows int) {
	return g.cols, g.rows
}
