package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// Chart geometry in SVG user units.
const (
	chartWidth   = 640
	chartHeight  = 280
	chartPadLeft = 64
	chartPadTop  = 16
	chartPadBot  = 32
	chartPadR    = 16
	chartYTicks  = 4
	chartXTicks  = 6
)

type chartTick struct {
	Pos   float64
	Label string
}

// lineChart is the precomputed geometry of a projected-value vs invested chart.
type lineChart struct {
	Width, Height  int
	Left, Right    float64
	Top, Bottom    float64
	ValuePath      string
	InvestedPath   string
	YTicks, XTicks []chartTick
}

func buildLineChart(series domain.ProjectionSeries, startYear int) lineChart {
	c := lineChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartPadLeft,
		Right:  chartWidth - chartPadR,
		Top:    chartPadTop,
		Bottom: chartHeight - chartPadBot,
	}
	if len(series) == 0 {
		return c
	}

	maxY := 0.0
	for _, p := range series {
		for _, v := range []float64{p.ProjectedValue.InexactFloat64(), p.CumulativeContributions.InexactFloat64()} {
			if v > maxY {
				maxY = v
			}
		}
	}
	if maxY <= 0 {
		maxY = 1
	}

	plotW := c.Right - c.Left
	plotH := c.Bottom - c.Top
	xAt := func(i int) float64 {
		if len(series) == 1 {
			return c.Left
		}
		return c.Left + plotW*float64(i)/float64(len(series)-1)
	}
	yAt := func(v float64) float64 { return c.Bottom - plotH*v/maxY }

	var value, invested strings.Builder
	for i, p := range series {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&value, "%s%.1f,%.1f ", cmd, xAt(i), yAt(p.ProjectedValue.InexactFloat64()))
		fmt.Fprintf(&invested, "%s%.1f,%.1f ", cmd, xAt(i), yAt(p.CumulativeContributions.InexactFloat64()))
	}
	c.ValuePath = strings.TrimSpace(value.String())
	c.InvestedPath = strings.TrimSpace(invested.String())

	for k := 0; k <= chartYTicks; k++ {
		v := maxY * float64(k) / chartYTicks
		c.YTicks = append(c.YTicks, chartTick{Pos: yAt(v), Label: FormatCompact(decimal.NewFromFloat(v))})
	}

	last := len(series) - 1
	step := 1
	if last > chartXTicks {
		step = (last + chartXTicks - 1) / chartXTicks
	}
	for i := 0; i <= last; i += step {
		c.XTicks = append(c.XTicks, chartTick{Pos: xAt(i), Label: yearLabel(series[i].Year, startYear)})
	}
	if c.XTicks[len(c.XTicks)-1].Label != yearLabel(series[last].Year, startYear) {
		c.XTicks = append(c.XTicks, chartTick{Pos: xAt(last), Label: yearLabel(series[last].Year, startYear)})
	}
	return c
}

func yearLabel(year, startYear int) string {
	if startYear != 0 {
		return strconv.Itoa(startYear + year)
	}
	return "Year " + strconv.Itoa(year)
}
