package output_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"github.com/wealthpath/wealth-calculator/internal/output"
)

func sampleReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	in := domain.ProjectionInput{
		InitialInvestment:         stddec.NewFromInt(1000),
		MonthlyContribution:       stddec.NewFromInt(100),
		AnnualInterestRatePercent: stddec.NewFromInt(5),
		MarginalTaxRatePercent:    stddec.NewFromInt(20),
		HorizonYears:              3,
		AccountRegime:             domain.RegimeTaxDeferred,
	}
	results, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), []domain.NamedInput{{Name: "Baseline", Input: in}})
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}
	report := calculation.BuildReport(results, 0, output.GenerateAssumptions([]domain.ProjectionInput{in}))
	report.GeneratedAt = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	return report
}

func TestGenerateReport_WritesTimestampedFiles(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport(t)

	for format, ext := range map[string]string{"json": "json", "csv": "csv", "csv-detailed": "csv", "html": "html", "console": "txt"} {
		files, err := output.GenerateReport(report, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		want := filepath.Join(dir, "wealth_projection_20260506_070809."+ext)
		if len(files) != 1 || files[0] != want {
			t.Fatalf("GenerateReport %s wrote %v, want %s", format, files, want)
		}
		if info, err := os.Stat(want); err != nil || info.Size() == 0 {
			t.Fatalf("%s: expected non-empty file: %v", format, err)
		}
	}
}

func TestGenerateReport_All(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	files, err := output.GenerateReport(sampleReport(t), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(sampleReport(t), "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}

	if _, err := output.Render(sampleReport(t), "pdf"); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("Render should reject pdf, got %v", err)
	}
}

func TestRender(t *testing.T) {
	out, err := output.Render(sampleReport(t), "lite")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.HasPrefix(string(out), "WEALTH PROJECTION SUMMARY") {
		t.Fatalf("unexpected lite output: %s", out)
	}
}

func TestIsTerminalFormat(t *testing.T) {
	for format, want := range map[string]bool{"console": true, "verbose": true, "text": true, "csv": false, "html": false} {
		if got := output.IsTerminalFormat(format); got != want {
			t.Errorf("IsTerminalFormat(%q) = %v, want %v", format, got, want)
		}
	}
}

func TestFormatterFunc(t *testing.T) {
	f := output.FormatterFunc{ID: "title", F: func(r *domain.ProjectionReport) ([]byte, error) {
		return []byte(r.Title), nil
	}}
	name, err := output.WriteFormatted(f, sampleReport(t), t.TempDir(), "txt")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Projected Growth for Traditional IRA" {
		t.Fatalf("unexpected content %q", data)
	}
}
