package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	broken := lyonSimulation()
	broken.TaxYear = 1999

	sims := []*domain.Simulation{lyonSimulation(), bordeauxSimulation(), broken, lilleSimulation(), toulouseSimulation()}
	items, err := newTestEngine(t).RunBatch(context.Background(), sims, 2)
	require.NoError(t, err)
	require.Len(t, items, len(sims))

	for i, item := range items {
		assert.Equal(t, i, item.Index)
	}
	assert.Equal(t, "7090.90", items[0].Result.Years[0].IncomeTax.IncomeTaxAmount.StringFixed(2))
	assert.Equal(t, "Bordeaux", items[1].Result.Name)
	assert.True(t, errors.Is(items[2].Err, domain.ErrUnknownTaxYear))
	assert.Nil(t, items[2].Result)
	assert.NoError(t, items[4].Err)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(t).RunBatch(ctx, []*domain.Simulation{lyonSimulation()}, 0)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunBatch_CancelledWhileRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := newTestEngine(t)
	engine.SetLogger(cancelAfterFirstYear{cancel: cancel})

	sim := lyonSimulation()
	sim.InvestmentTopFiscalYear = 5

	items, err := engine.RunBatch(ctx, []*domain.Simulation{sim}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, items, 1)
	assert.True(t, errors.Is(items[0].Err, context.Canceled))
	require.NotNil(t, items[0].Result)
	assert.Len(t, items[0].Result.Years, 1)
}
