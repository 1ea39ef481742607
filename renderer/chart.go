package renderer

import (
	"errors"

	"github.com/etnz/fundwatch"
	"github.com/vicanso/go-charts/v2"
)

// GrowthChartPNG renders the fund and every benchmark as indexed growth
// curves, all rebased to 100 at the first record so they share one scale.
// Benchmark days before the first observation render as gaps.
func GrowthChartPNG(s fundwatch.Series, title string) ([]byte, error) {
	if s.Len() < 2 {
		return nil, errors.New("not enough records to chart")
	}

	labels := make([]string, s.Len())
	for i, r := range s {
		labels[i] = r.Date.String()
	}

	base := s.First().ShareValue
	fund := make([]float64, s.Len())
	for i, r := range s {
		fund[i] = r.ShareValue / base * 100
	}

	names := s.Benchmarks()
	values := [][]float64{fund}
	legends := []string{"fund"}
	for _, name := range names {
		series := make([]float64, s.Len())
		var benchBase float64
		for i, r := range s {
			level, ok := r.Benchmark(name)
			if !ok || level <= 0 {
				series[i] = charts.GetNullValue()
				continue
			}
			if benchBase == 0 {
				benchBase = level
			}
			series[i] = level / benchBase * 100
		}
		values = append(values, series)
		legends = append(legends, name)
	}

	yMin, yMax := chartBounds(values)
	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.LegendOptionFunc(charts.LegendOption{Data: legends}),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// DrawdownChartPNG renders the drawdown curve of the share value.
func DrawdownChartPNG(s fundwatch.Series, title string) ([]byte, error) {
	curve := fundwatch.DrawdownCurve(s)
	if curve == nil {
		return nil, errors.New("not enough records to chart")
	}

	labels := make([]string, len(curve))
	values := make([]float64, len(curve))
	for i, p := range curve {
		labels[i] = p.Date.String()
		values[i] = float64(p.Drawdown)
	}

	yMin, yMax := chartBounds([][]float64{values})
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// chartBounds computes padded y-axis bounds over every plotted value,
// ignoring gap markers.
func chartBounds(values [][]float64) (yMin, yMax float64) {
	null := charts.GetNullValue()
	first := true
	for _, series := range values {
		for _, v := range series {
			if v == null {
				continue
			}
			if first {
				yMin, yMax = v, v
				first = false
				continue
			}
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	return yMin - pad, yMax + pad
}
