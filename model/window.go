package model

import "github.com/sheikhrachel/sparse-gol/rules"

// Window holds the occupancy of the 24 radius-2 positions around a focal
// cell, one bit per entry of rules.Offsets
type Window uint32

// ClassifyWindow scans every live cell once and flags the window position it
// occupies, if any. Each scanned cell matches at most one offset.
func ClassifyWindow(g *Generation, focal Cell) Window {
	var w Window
	for c := range g.cellsOrNil() {
		if idx, ok := rules.IndexOf(c.X-focal.X, c.Y-focal.Y); ok {
			w |= 1 << idx
		}
	}
	return w
}

// ClassifyWindowIndexed answers the same question with one membership lookup
// per offset instead of a scan of the population
func ClassifyWindowIndexed(g *Generation, focal Cell) Window {
	var w Window
	for i, o := range rules.Offsets {
		if g.Contains(focal.Add(o.DX, o.DY)) {
			w |= 1 << i
		}
	}
	return w
}

// Has reports whether the window position at index i is occupied
func (w Window) Has(i int) bool {
	return w&(1<<i) != 0
}

// Neighbors counts the live radius-1 neighbors of the focal cell
func (w Window) Neighbors() int {
	return rules.CountBits(uint32(w) & rules.InnerMask)
}

// BirthCount counts the live neighbors of the k-th radius-1 position,
// including the focal cell
func (w Window) BirthCount(k int) int {
	return 1 + rules.CountBits(uint32(w)&rules.BirthMasks[k])
}
