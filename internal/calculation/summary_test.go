package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

func TestSummarize(t *testing.T) {
	in := newInput(10000, 500, 7, 25, 30, domain.RegimeTaxFree)
	series, err := Project(in)
	require.NoError(t, err)

	s := Summarize(in, series)
	assert.Equal(t, "Roth IRA", s.AccountName)
	assert.True(t, s.FinalValue.Equal(series.Final().ProjectedValue))
	assert.True(t, s.TotalInvested.Equal(dec(190000)))
	assert.True(t, s.TotalReturns.Equal(s.FinalValue.Sub(s.TotalInvested)))
	assertClose(t, s.TotalReturns.Div(s.FinalValue).Mul(decimal.NewFromInt(100)), s.ReturnsShare, 0.0001)

	// growth accelerates, so the last year grows most
	assert.Equal(t, 30, s.BestYear)
	assert.True(t, s.BestYearGrowth.Equal(series[30].YearGrowth))
}

func TestSummarize_ZeroFinalValue(t *testing.T) {
	in := newInput(0, 0, 5, 0, 2, domain.RegimeTaxable)
	series, err := Project(in)
	require.NoError(t, err)

	s := Summarize(in, series)
	assert.True(t, s.ReturnsShare.IsZero())
	assert.Equal(t, 1, s.BestYear)
}

func TestAnalyze(t *testing.T) {
	assert.Equal(t, domain.ComparisonAnalysis{}, Analyze(nil))

	results := []domain.ScenarioResult{
		{Name: "a", Summary: domain.ProjectionSummary{FinalValue: dec(100)}},
		{Name: "b", Summary: domain.ProjectionSummary{FinalValue: dec(300)}},
		{Name: "c", Summary: domain.ProjectionSummary{FinalValue: dec(50)}},
	}
	a := Analyze(results)
	assert.Equal(t, "b", a.BestScenario)
	assert.Equal(t, "c", a.WorstScenario)
	assert.True(t, a.Spread.Equal(dec(250)))
}

func TestBuildReport(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(nil)

	in := newInput(10000, 500, 7, 25, 5, domain.RegimeTaxDeferred)
	single, err := NewProjectionEngine().RunScenarios(context.Background(), []domain.NamedInput{{Name: "Default", Input: in}})
	require.NoError(t, err)

	report := BuildReport(single, 2026, []string{"note"})
	assert.Equal(t, "Projected Growth for Traditional IRA", report.Title)
	assert.Equal(t, fixed, report.GeneratedAt)
	assert.Equal(t, 2031, report.CalendarYear(5))
	assert.Equal(t, "Default", report.Analysis.BestScenario)
	assert.True(t, report.Analysis.Spread.IsZero())

	all, err := NewProjectionEngine().CompareRegimes(context.Background(), in)
	require.NoError(t, err)
	report = BuildReport(all, 0, nil)
	assert.Equal(t, "Scenario Comparison", report.Title)
	assert.Equal(t, 0, report.CalendarYear(5))
	// taxable and roth tie; the earlier scenario wins
	assert.Equal(t, "Taxable Brokerage", report.Analysis.BestScenario)
	assert.Equal(t, "Traditional IRA", report.Analysis.WorstScenario)
}
