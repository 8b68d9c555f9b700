package model

import (
	"github.com/sheikhrachel/sparse-gol/rules"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// Classifier computes the window around a focal live cell
type Classifier func(g *Generation, focal Cell) Window

// Step computes the next generation by scanning the population for each
// live cell's window
func Step(current *Generation) *Generation {
	return StepWith(current, ClassifyWindow, nil)
}

// StepWith computes the next generation with the given classifier, taking
// storage for the result from pool when one is provided
func StepWith(current *Generation, classify Classifier, pool *GenerationPool) *Generation {
	var next *Generation
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewGeneration()
	}

	for c := range current.cellsOrNil() {
		w := classify(current, c)

		if rules.Survives(w.Neighbors()) {
			next.insert(c)
		}

		for k := range rules.InnerCount {
			o := rules.Offsets[k]
			candidate := c.Add(o.DX, o.DY)
			// live candidates are settled by their own survival check
			if w.Has(k) || next.Contains(candidate) {
				continue
			}
			if rules.Born(w.BirthCount(k)) {
				next.insert(candidate)
			}
		}
	}

	return next
}

// NextGeneration calculates the next generation based on configuration
func (g *Generation) NextGeneration(config utils.Config, pool *GenerationPool) *Generation {
	if config.UseIndexedWindow {
		return StepWith(g, ClassifyWindowIndexed, pool)
	}
	return StepWith(g, ClassifyWindow, pool)
}
