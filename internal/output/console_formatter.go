package output

import (
	"bytes"
	"fmt"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WEALTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf, report.Title)
	fmt.Fprintln(&buf)
	for _, sc := range report.Scenarios {
		s := sc.Summary
		fmt.Fprintf(&buf, "%s (%s, %d years): FutureValue=%s Invested=%s Returns=%s\n",
			sc.Name, s.AccountName, sc.Input.HorizonYears,
			FormatWholeCurrency(s.FinalValue),
			FormatWholeCurrency(s.TotalInvested),
			FormatWholeCurrency(s.TotalReturns),
		)
		fmt.Fprintf(&buf, "  ReturnsShare=%s BestYear=%d (+%s)\n",
			FormatPercentage(s.ReturnsShare), s.BestYear, FormatWholeCurrency(s.BestYearGrowth))
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s (Δ %s / %s over %s)\n", rec.ScenarioName,
			FormatWholeCurrency(rec.AdvantageOverWorst), FormatPercentage(rec.PercentageChange), rec.WorstScenario)
	}
	return buf.Bytes(), nil
}
