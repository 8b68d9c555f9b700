package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/sparse-gol/rules"
)

// referenceStep evaluates every cell of the bounding box grown by one
func referenceStep(g *Generation) *Generation {
	next := NewGeneration()
	lo, hi, ok := g.Bounds()
	if !ok {
		return next
	}
	for x := lo.X - 1; x <= hi.X+1; x++ {
		for y := lo.Y - 1; y <= hi.Y+1; y++ {
			c := Cell{x, y}
			if rules.ApplyConwayRules(liveNeighbors(g, c), g.Contains(c)) {
				next.insert(c)
			}
		}
	}
	return next
}

func liveNeighbors(g *Generation, c Cell) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if (dx != 0 || dy != 0) && g.Contains(c.Add(dx, dy)) {
				n++
			}
		}
	}
	return n
}

// randomGeneration fills a size x size square at the given density
func randomGeneration(rng *rand.Rand, size int, density float64) *Generation {
	g := NewGeneration()
	for x := range size {
		for y := range size {
			if rng.Float64() < density {
				g.insert(Cell{x - size/2, y - size/2})
			}
		}
	}
	return g
}
