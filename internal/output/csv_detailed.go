package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw annual projection per scenario/year.
// CalendarYear is left blank when the report has no start year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Account", "Year", "CalendarYear", "CumulativeContributions", "ProjectedValue", "CumulativeGrowth", "YearContributions", "YearGrowth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		for _, p := range sc.Series {
			calendar := ""
			if y := report.CalendarYear(p.Year); y != 0 {
				calendar = strconv.Itoa(y)
			}
			row := []string{
				sc.Name,
				sc.Input.AccountRegime.String(),
				strconv.Itoa(p.Year),
				calendar,
				p.CumulativeContributions.StringFixed(2),
				p.ProjectedValue.StringFixed(2),
				p.CumulativeGrowth.StringFixed(2),
				p.YearContributions.StringFixed(2),
				p.YearGrowth.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
