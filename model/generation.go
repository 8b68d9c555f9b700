package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// ErrDuplicateCell is returned when a generation would hold the same coordinate twice
var ErrDuplicateCell = errors.New("duplicate cell in generation")

// Cell is a live coordinate on the lattice
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns the cell translated by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// compareCells orders cells by x, then y
func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Generation is the set of live cells at one point in time. A generation is
// not mutated once it has been handed to a caller.
type Generation struct {
	cells map[Cell]struct{}
}

// NewGeneration creates an empty generation
func NewGeneration() *Generation {
	return &Generation{cells: make(map[Cell]struct{})}
}

// FromCells builds a generation from a list of cells, rejecting duplicates
func FromCells(cells []Cell) (*Generation, error) {
	g := NewGeneration()
	for _, c := range cells {
		if !g.insert(c) {
			return nil, errors.Wrapf(ErrDuplicateCell, "[FromCells] cell %s", c)
		}
	}
	return g, nil
}

// MustFromCells is FromCells for literal patterns known to be duplicate free
func MustFromCells(cells ...Cell) *Generation {
	g, err := FromCells(cells)
	if err != nil {
		panic(err)
	}
	return g
}

// insert adds c and reports whether it was absent
func (g *Generation) insert(c Cell) bool {
	if _, ok := g.cells[c]; ok {
		return false
	}
	g.cells[c] = struct{}{}
	return true
}

// Contains reports whether c is alive
func (g *Generation) Contains(c Cell) bool {
	if g == nil {
		return false
	}
	_, ok := g.cells[c]
	return ok
}

// Len returns the live population
func (g *Generation) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// IsEmpty reports whether every cell is dead
func (g *Generation) IsEmpty() bool {
	return g.Len() == 0
}

// Cells returns the live cells sorted by (x, y)
func (g *Generation) Cells() []Cell {
	if g == nil {
		return nil
	}
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

// Equal compares cardinality, then the sorted cells element by element
func (g *Generation) Equal(other *Generation) bool {
	if g.Len() != other.Len() {
		return false
	}
	return slices.Equal(g.Cells(), other.Cells())
}

// Bounds returns the bounding box of the live cells; ok is false for an empty generation
func (g *Generation) Bounds() (minCell, maxCell Cell, ok bool) {
	for c := range g.cellsOrNil() {
		if !ok {
			minCell, maxCell, ok = c, c, true
			continue
		}
		minCell.X, minCell.Y = min(minCell.X, c.X), min(minCell.Y, c.Y)
		maxCell.X, maxCell.Y = max(maxCell.X, c.X), max(maxCell.Y, c.Y)
	}
	return minCell, maxCell, ok
}

func (g *Generation) cellsOrNil() map[Cell]struct{} {
	if g == nil {
		return nil
	}
	return g.cells
}

// clear empties the generation while keeping its storage
func (g *Generation) clear() {
	clear(g.cells)
}

func (g *Generation) String() string {
	return fmt.Sprintf("%v", g.Cells())
}
