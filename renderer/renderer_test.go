package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/date"
	"github.com/shopspring/decimal"
)

func demoSeries(t *testing.T) fundwatch.Series {
	t.Helper()
	day := func(s string, share float64, benchmarks map[string]float64) fundwatch.DailyRecord {
		return fundwatch.DailyRecord{
			Date:       date.MustParse(s),
			Principal:  decimal.NewFromInt(10000),
			ShareValue: share,
			Benchmarks: benchmarks,
		}
	}
	s := fundwatch.Normalize([]fundwatch.DailyRecord{
		day("2023-01-02", 1.00, map[string]float64{"sha": 3000}),
		day("2023-07-03", 1.08, map[string]float64{"sha": 3100}),
		day("2024-01-02", 1.05, nil),
		day("2024-07-01", 1.18, map[string]float64{"sha": 3250}),
	})
	if s.Len() != 4 {
		t.Fatalf("demo series has %d records", s.Len())
	}
	return s
}

func TestOverviewMarkdown(t *testing.T) {
	s := demoSeries(t)
	md := OverviewMarkdown(s, fundwatch.CalculateOverallMetrics(s), "CNY")

	for _, want := range []string{
		"# Portfolio Overview from 2023-01-02 to 2024-07-01",
		"| Total Return | +18.00% |",
		"| sha |",
		"**Average**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("overview is missing %q:\n%s", want, md)
		}
	}
}

func TestOverviewMarkdownEmptyMetrics(t *testing.T) {
	s := demoSeries(t)
	md := OverviewMarkdown(s, nil, "CNY")
	if !strings.Contains(md, "Not enough history") {
		t.Errorf("overview without metrics should explain itself:\n%s", md)
	}
}

func TestRiskMarkdown(t *testing.T) {
	s := demoSeries(t)
	r := fundwatch.CalculateRiskMetrics(s)
	if r == nil {
		t.Fatal("CalculateRiskMetrics() = nil")
	}
	md := RiskMarkdown(r, 30, fundwatch.RollingVolatility(s, 2))
	for _, want := range []string{
		"# Risk Report",
		"| Annualized Volatility |",
		"| Sharpe Ratio |",
		"| Max Drawdown |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("risk report is missing %q:\n%s", want, md)
		}
	}
}

func TestAnnualMarkdown(t *testing.T) {
	s := demoSeries(t)
	md := AnnualMarkdown(
		fundwatch.CalculateAnnualReturns(s),
		date.Yearly,
		fundwatch.BestPeriods(s, date.Yearly, 1),
		fundwatch.WorstPeriods(s, date.Yearly, 1),
	)
	for _, want := range []string{"| 2023 |", "| 2024 |", "## Best Periods", "## Worst Periods"} {
		if !strings.Contains(md, want) {
			t.Errorf("calendar report is missing %q:\n%s", want, md)
		}
	}
}

func TestCorrelationsMarkdown(t *testing.T) {
	s := demoSeries(t)
	md := CorrelationsMarkdown(fundwatch.CalculateCorrelations(s), s.Benchmarks())
	if !strings.Contains(md, "| sha |") {
		t.Errorf("relations report is missing the sha row:\n%s", md)
	}
}

func TestProjectionMarkdown(t *testing.T) {
	s := demoSeries(t)
	p := fundwatch.ProjectFrom(s, fundwatch.M(10000, "CNY"), s.First().Date, fundwatch.DefaultRiskFreeRate)
	if p == nil {
		t.Fatal("ProjectFrom() = nil")
	}
	md := ProjectionMarkdown(p, s.Benchmarks())
	for _, want := range []string{"# What-if Projection", "| Fund |", "| sha |", "| Deposit at 2.50% |"} {
		if !strings.Contains(md, want) {
			t.Errorf("projection report is missing %q:\n%s", want, md)
		}
	}
}

func TestGrowthChartPNG(t *testing.T) {
	s := demoSeries(t)
	img, err := GrowthChartPNG(s, "growth")
	if err != nil {
		t.Fatalf("GrowthChartPNG() error = %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Error("GrowthChartPNG() did not produce a PNG")
	}
}

func TestDrawdownChartPNG(t *testing.T) {
	s := demoSeries(t)
	img, err := DrawdownChartPNG(s, "drawdown")
	if err != nil {
		t.Fatalf("DrawdownChartPNG() error = %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Error("DrawdownChartPNG() did not produce a PNG")
	}
}

func TestChartsRejectShortSeries(t *testing.T) {
	short := fundwatch.Normalize([]fundwatch.DailyRecord{{
		Date: date.MustParse("2024-01-01"), ShareValue: 1.0,
	}})
	if _, err := GrowthChartPNG(short, "x"); err == nil {
		t.Error("GrowthChartPNG(single record) should fail")
	}
	if _, err := DrawdownChartPNG(short, "x"); err == nil {
		t.Error("DrawdownChartPNG(single record) should fail")
	}
}
