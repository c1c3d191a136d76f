package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func sampleRun(name string, years int) Run {
	return Run{
		Scenario: name,
		Input: domain.ProjectionInput{
			InitialInvestment:         decimal.RequireFromString("10000.25"),
			MonthlyContribution:       decimal.NewFromInt(500),
			AnnualInterestRatePercent: decimal.RequireFromString("7.5"),
			MarginalTaxRatePercent:    decimal.NewFromInt(25),
			HorizonYears:              years,
			AccountRegime:             domain.RegimeTaxDeferred,
		},
		FinalValue:    decimal.RequireFromString("123456.789012345678901234"),
		TotalInvested: decimal.NewFromInt(190000),
	}
}

func TestHistory_EmptyDatabase(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	runs, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = h.LastInput(ctx)
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestHistory_RecordAndRecent(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	for i := 1; i <= 5; i++ {
		require.NoError(t, h.Record(ctx, sampleRun(fmt.Sprintf("run-%d", i), i)))
	}

	runs, err := h.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-5", runs[0].Scenario)
	assert.Equal(t, "run-3", runs[2].Scenario)

	latest := runs[0]
	assert.True(t, latest.CreatedAt.Equal(fixed))
	assert.Equal(t, 5, latest.Input.HorizonYears)
	assert.Equal(t, domain.RegimeTaxDeferred, latest.Input.AccountRegime)
	assert.True(t, latest.Input.InitialInvestment.Equal(decimal.RequireFromString("10000.25")))
	assert.True(t, latest.Input.AnnualInterestRatePercent.Equal(decimal.RequireFromString("7.5")))
	// TEXT storage keeps every digit
	assert.Equal(t, "123456.789012345678901234", latest.FinalValue.String())
}

func TestHistory_RecordBatchIsAtomic(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	require.NoError(t, h.Record(ctx, sampleRun("a", 1), sampleRun("b", 2), sampleRun("c", 3)))
	runs, err := h.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	require.NoError(t, h.Record(ctx))
	runs, err = h.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestHistory_LastInput(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	first := sampleRun("first", 10)
	second := sampleRun("second", 20)
	second.Input.AccountRegime = domain.RegimeTaxFree
	require.NoError(t, h.Record(ctx, first))
	require.NoError(t, h.Record(ctx, second))

	in, err := h.LastInput(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, in.HorizonYears)
	assert.Equal(t, domain.RegimeTaxFree, in.AccountRegime)
}

func TestHistory_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, h.Record(context.Background(), sampleRun("persisted", 7)))
	require.NoError(t, h.Close())

	h, err = Open(path)
	require.NoError(t, err)
	defer h.Close()

	in, err := h.LastInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, in.HorizonYears)
}

func TestHistory_ExplicitTimestamp(t *testing.T) {
	h := openTestHistory(t)
	run := sampleRun("dated", 1)
	run.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	require.NoError(t, h.Record(context.Background(), run))

	runs, err := h.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].CreatedAt.Equal(run.CreatedAt))
	assert.Equal(t, time.UTC, runs[0].CreatedAt.Location())
}

func TestRunFromResult(t *testing.T) {
	res := domain.ScenarioResult{
		Name:  "Roth IRA",
		Input: sampleRun("x", 30).Input,
		Summary: domain.ProjectionSummary{
			FinalValue:    decimal.NewFromInt(5),
			TotalInvested: decimal.NewFromInt(3),
		},
	}
	run := RunFromResult(res)
	assert.Equal(t, "Roth IRA", run.Scenario)
	assert.True(t, run.FinalValue.Equal(decimal.NewFromInt(5)))
	assert.True(t, run.CreatedAt.IsZero())
}
