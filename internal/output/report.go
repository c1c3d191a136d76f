package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names that match no formatter or alias.
var ErrUnsupportedFormat = errors.New("unsupported report format")

var fileExtensions = map[string]string{
	"console":      "txt",
	"console-lite": "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"html":         "html",
	"json":         "json",
}

// IsTerminalFormat reports whether a format is meant for stdout rather than a file.
func IsTerminalFormat(format string) bool {
	n := NormalizeFormatName(format)
	return n == "console" || n == "console-lite"
}

// Render formats a report in memory.
func Render(report *domain.ProjectionReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// GenerateReport formats a report and writes it to a timestamped file in dir,
// returning the file name. "all" writes every file format.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range []string{"detailed-csv", "html", "json"} {
			files, err := GenerateReport(report, name, dir)
			if err != nil {
				return written, err
			}
			written = append(written, files...)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, report, dir, fileExtensions[f.Name()])
	if err != nil {
		return nil, fmt.Errorf("writing %s report: %w", f.Name(), err)
	}
	return []string{name}, nil
}

// unsupported enriches ErrUnsupportedFormat with available formatters and aliases.
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
