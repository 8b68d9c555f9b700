package model

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// Report is the fate of one surveyed seed
type Report struct {
	Name    string
	Initial int
	Final   int
	Peak    int
	Outcome Outcome
}

// Survey runs one simulation per seed concurrently and reports how each one
// ended. Every simulation is single threaded; the seeds are owned by Survey.
// A positive MaxSteps is required so that oscillators terminate.
func Survey(ctx context.Context, config utils.Config, seeds map[string]*Generation) ([]Report, error) {
	if config.MaxSteps <= 0 {
		return nil, errors.Errorf("[Survey] max_steps must be positive, got %d", config.MaxSteps)
	}

	var (
		names   = make([]string, 0, len(seeds))
		reports = make([]Report, len(seeds))
	)
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i, name := range names {
		seed := seeds[name]
		eg.Go(func() error {
			report := Report{Name: name, Initial: seed.Len(), Peak: seed.Len()}
			sim := NewSimulation(config, seed)
			for !sim.Outcome().Done() {
				if err := ctx.Err(); err != nil {
					return errors.Wrapf(err, "[Survey] %s cancelled at step %d", name, sim.StepIndex())
				}
				t := sim.Advance()
				report.Peak = max(report.Peak, t.Population)
			}
			report.Final = sim.Current().Len()
			report.Outcome = sim.Outcome()
			reports[i] = report
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
