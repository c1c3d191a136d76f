package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Account", "InitialInvestment", "MonthlyContribution", "AnnualRatePercent", "TaxRatePercent", "Years", "FutureValue", "TotalInvested", "TotalReturns", "ReturnsSharePercent", "BestYear", "BestYearGrowth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		in, s := sc.Input, sc.Summary
		row := []string{
			sc.Name,
			in.AccountRegime.String(),
			in.InitialInvestment.StringFixed(2),
			in.MonthlyContribution.StringFixed(2),
			in.AnnualInterestRatePercent.String(),
			in.MarginalTaxRatePercent.String(),
			strconv.Itoa(in.HorizonYears),
			s.FinalValue.StringFixed(2),
			s.TotalInvested.StringFixed(2),
			s.TotalReturns.StringFixed(2),
			s.ReturnsShare.StringFixed(2),
			strconv.Itoa(s.BestYear),
			s.BestYearGrowth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
