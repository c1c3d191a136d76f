package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with inline SVG charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"whole":   FormatWholeCurrency,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"year":    yearLabel,
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	domain.ScenarioResult
	Chart lineChart
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	scenarios := make([]htmlScenario, len(report.Scenarios))
	for i, sc := range report.Scenarios {
		scenarios[i] = htmlScenario{ScenarioResult: sc, Chart: buildLineChart(sc.Series, report.StartYear)}
	}

	data := struct {
		*domain.ProjectionReport
		Recommendation Recommendation
		Assumptions    []string
		Scenarios      []htmlScenario
		Compare        bool
	}{report, AnalyzeScenarios(report), assumptions, scenarios, len(scenarios) > 1}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
