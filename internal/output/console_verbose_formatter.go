package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full terminal report: title, summary
// cards, a growth sparkline, the annual breakdown and, for several scenarios,
// a comparison table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, renderTitle(report.Title))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "  %s\n", mutedStyle.Render("Generated "+report.GeneratedAt.Format("2006-01-02 15:04")))
	}
	fmt.Fprintln(&buf)

	for _, sc := range report.Scenarios {
		writeScenario(&buf, report, sc, len(report.Scenarios) == 1)
	}

	if len(report.Scenarios) > 1 {
		writeComparison(&buf, report)
	}

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Key Assumptions"))
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "  • %s\n", mutedStyle.Render(a))
	}
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, report *domain.ProjectionReport, sc domain.ScenarioResult, withBreakdown bool) {
	s := sc.Summary
	in := sc.Input

	heading := sc.Name
	if s.AccountName != "" && s.AccountName != sc.Name {
		heading += " · " + s.AccountName
	}
	fmt.Fprintf(buf, "  %s\n", headerStyle.Render(heading))
	fmt.Fprintf(buf, "  %s\n", mutedStyle.Render(fmt.Sprintf("%s initial, %s monthly, %s a year for %d years",
		FormatWholeCurrency(in.InitialInvestment), FormatWholeCurrency(in.MonthlyContribution),
		FormatPercentage(in.AnnualInterestRatePercent), in.HorizonYears)))

	fmt.Fprintln(buf, renderCards([][2]string{
		{"Future Value", FormatWholeCurrency(s.FinalValue)},
		{"Total Invested", FormatWholeCurrency(s.TotalInvested)},
		{"Total Returns", FormatWholeCurrency(s.TotalReturns)},
	}))
	fmt.Fprintf(buf, "  Returns are %s of the final value; best year %d added %s\n",
		FormatPercentage(s.ReturnsShare), s.BestYear, FormatWholeCurrency(s.BestYearGrowth))
	fmt.Fprintf(buf, "  Growth  %s  %s\n\n",
		sparkStyle.Render(renderSparkline(sc.Series.Values())),
		mutedStyle.Render(FormatCompact(s.FinalValue)))

	if !withBreakdown {
		return
	}

	t := Table{Title: "Annual Breakdown", Headers: []string{"Year"}}
	withCalendar := report.StartYear != 0
	if withCalendar {
		t.Headers = append(t.Headers, "Calendar")
	}
	t.Headers = append(t.Headers, "Invested", "Projected Value", "Total Growth", "Added", "Year Growth")
	for _, p := range sc.Series {
		row := []string{strconv.Itoa(p.Year)}
		if withCalendar {
			row = append(row, strconv.Itoa(report.CalendarYear(p.Year)))
		}
		row = append(row,
			FormatWholeCurrency(p.CumulativeContributions),
			FormatWholeCurrency(p.ProjectedValue),
			FormatWholeCurrency(p.CumulativeGrowth),
			FormatWholeCurrency(p.YearContributions),
			FormatWholeCurrency(p.YearGrowth),
		)
		t.Rows = append(t.Rows, row)
	}
	fmt.Fprintln(buf, RenderTable(t))
}

func writeComparison(buf *bytes.Buffer, report *domain.ProjectionReport) {
	t := Table{
		Title:   "Scenario Comparison",
		Headers: []string{"Scenario", "Account", "Years", "Future Value", "Invested", "Returns"},
	}
	for _, sc := range report.Scenarios {
		t.Rows = append(t.Rows, []string{
			sc.Name,
			sc.Summary.AccountName,
			strconv.Itoa(sc.Input.HorizonYears),
			FormatWholeCurrency(sc.Summary.FinalValue),
			FormatWholeCurrency(sc.Summary.TotalInvested),
			FormatWholeCurrency(sc.Summary.TotalReturns),
		})
	}
	fmt.Fprintln(buf, RenderTable(t))

	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintf(buf, "  Best: %s, %s ahead of %s (%s)\n\n",
			gainStyle.Render(rec.ScenarioName), FormatWholeCurrency(rec.AdvantageOverWorst),
			rec.WorstScenario, FormatPercentage(rec.PercentageChange))
	}
}
