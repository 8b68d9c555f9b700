package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/input"
	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// displayBanner shows the rules and the displayed window
func displayBanner(out io.Writer, config utils.Config) {
	bound := model.Bound(config.Extent)
	fmt.Fprint(out, "\n\n ~~~~~~~~~~~~~~~ John Conway's 'Game of Life' ~~~~~~~~~~~~~~~\n\n")
	fmt.Fprintln(out, "The grid consists of alive and dead cells which abide by the following rules:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "   - Rule 1: Any live cell with fewer than two live neighbours dies, as if by underpopulation.")
	fmt.Fprintln(out, "   - Rule 2: Any live cell with two or three live neighbours lives on to the next generation.")
	fmt.Fprintln(out, "   - Rule 3: Any live cell with more than three live neighbours dies, as if by overpopulation.")
	fmt.Fprintln(out, "   - Rule 4: Any dead cell with exactly three live neighbours becomes a live cell, as if by reproduction.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "The grid is printed with a size of %d ranging from %d to %d, but cells may live outside of it.\n\n",
		config.Extent, bound-config.Extent, bound)
}

// initialGeneration picks the starting generation from the configured source,
// falling back to asking the user
func initialGeneration(config utils.Config, prompter *input.Prompter) (*model.Generation, error) {
	switch {
	case config.Pattern != "":
		return model.Pattern(config.Pattern, 0, 0)
	case config.RandomDensity > 0:
		return model.Randomize(config.Extent, config.RandomDensity, config.Seed), nil
	case config.InputFile != "":
		return input.LoadFile(config.InputFile, config.Bound())
	}
	return prompter.Collect()
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, g *model.Generation, stats *utils.Stats) {
	// Show the bounding box, live cells may have drifted out of the window
	boundingInfo := ""
	if lo, hi, ok := g.Bounds(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %s..%s", lo, hi)
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Births: %d | Deaths: %d | Peak: %d%s\n",
		stats.TotalGenerations, stats.Population, stats.Births, stats.Deaths, stats.PeakPopulation, boundingInfo)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(out)
}

// runGame steps the simulation, drawing every generation, until it halts or
// ctx is cancelled
func runGame(
	ctx context.Context,
	out io.Writer,
	config utils.Config,
	sim *model.Simulation,
	renderer *model.TerminalRenderer,
	prompter *input.Prompter,
) (model.Outcome, error) {
	stats := utils.NewStats()

	for !sim.Outcome().Done() {
		if err := ctx.Err(); err != nil {
			return sim.Outcome(), err
		}

		start := time.Now()
		t := sim.Advance()
		stats.Update(t.Step, t.Population, t.Births, t.Deaths, time.Since(start))

		if config.ClearScreen {
			renderer.Clear()
		}
		displayGameStatus(out, sim.Current(), stats)
		renderer.Display(sim.Current())

		if t.Outcome.Done() {
			break
		}
		if config.PauseEachStep {
			if err := prompter.Pause(); err != nil {
				return sim.Outcome(), errors.Wrapf(err, "[runGame] paused at step %d", t.Step)
			}
		} else {
			time.Sleep(config.FrameRate)
		}
	}

	fmt.Fprintln(out, sim.Outcome().Message())
	return sim.Outcome(), nil
}

// runSurvey runs every built-in pattern and prints how each one ended
func runSurvey(ctx context.Context, out io.Writer, config utils.Config) error {
	seeds := make(map[string]*model.Generation)
	for _, name := range model.PatternNames() {
		g, err := model.Pattern(name, 0, 0)
		if err != nil {
			return err
		}
		seeds[name] = g
	}
	if config.RandomDensity > 0 {
		seeds[fmt.Sprintf("random-%d", config.Seed)] = model.Randomize(config.Extent, config.RandomDensity, config.Seed)
	}

	reports, err := model.Survey(ctx, config, seeds)
	if err != nil {
		return errors.Wrap(err, "[runSurvey] survey failed")
	}

	fmt.Fprintf(out, "%-14s %8s %8s %8s  %s\n", "PATTERN", "INITIAL", "FINAL", "PEAK", "OUTCOME")
	for _, r := range reports {
		fmt.Fprintf(out, "%-14s %8d %8d %8d  %s at step %d\n",
			r.Name, r.Initial, r.Final, r.Peak, r.Outcome.Verdict, r.Outcome.Step)
	}
	return nil
}
