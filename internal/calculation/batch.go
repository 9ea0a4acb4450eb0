package calculation

import (
	"context"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome of one simulation of a batch
type BatchItem struct {
	Index  int
	Result *domain.SimulationResult
	Err    error
}

// RunBatch evaluates independent simulations with at most `limit` running at
// once. A failing simulation does not stop the others; its error is kept on
// its item. The returned error is only set when ctx is cancelled, including while
// simulations are running.
func (ce *CalculationEngine) RunBatch(ctx context.Context, sims []*domain.Simulation, limit int) ([]BatchItem, error) {
	if limit < 1 {
		limit = 1
	}
	items := make([]BatchItem, len(sims))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, sim := range sims {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i] = BatchItem{Index: i, Err: err}
				return err
			}
			result, err := ce.RunSimulation(gctx, sim)
			items[i] = BatchItem{Index: i, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, err
	}
	// a run cancelled mid-way only reports it on its item
	if err := ctx.Err(); err != nil {
		return items, err
	}
	ce.Logger.Infof("batch of %d simulations completed", len(sims))
	return items, nil
}
