package fundwatch

import (
	"strings"
	"testing"

	"github.com/etnz/fundwatch/date"
)

func TestParseCSVFull(t *testing.T) {
	input := `date,principle,share_value,sha,csi300
2024-01-02,10000,1.0000,2962.28,3322.16
2024-01-03,10000,0.9985,,3316.90
2024-01-04,12000,1.0021,2954.35,
`
	records, errs, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("ParseCSV() row errors = %v", errs)
	}
	if len(records) != 3 {
		t.Fatalf("ParseCSV() got %d records, want 3", len(records))
	}

	r := records[0]
	if r.Date != date.MustParse("2024-01-02") {
		t.Errorf("record date = %v", r.Date)
	}
	if r.ShareValue != 1.0 {
		t.Errorf("share value = %v, want 1.0", r.ShareValue)
	}
	if level, ok := r.Benchmark("sha"); !ok || level != 2962.28 {
		t.Errorf("sha level = %v, %v", level, ok)
	}

	// empty benchmark cells are absent, not errors
	if _, ok := records[1].Benchmark("sha"); ok {
		t.Error("sha should be absent on 2024-01-03")
	}
	if _, ok := records[2].Benchmark("csi300"); ok {
		t.Error("csi300 should be absent on 2024-01-04")
	}
}

func TestParseCSVSimplifiedDerivesShareValue(t *testing.T) {
	// A deposit buys units at the last known share value, so the derived
	// NAV is unaffected by the cash inflow itself.
	input := `my portfolio
date,principle,market_value
01/01/2024,1000,1000
02/01/2024,1000,1100
03/01/2024,2100,3300
`
	records, errs, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("ParseCSV() row errors = %v", errs)
	}
	if len(records) != 3 {
		t.Fatalf("ParseCSV() got %d records, want 3", len(records))
	}

	near(t, "day 1 share value", records[0].ShareValue, 1.0, 1e-9)
	near(t, "day 2 share value", records[1].ShareValue, 1.1, 1e-9)
	// 1100 deposited at NAV 1.1 buys 1000 units; 3300 / 2000 units = 1.65
	near(t, "day 3 share value", records[2].ShareValue, 1.65, 1e-9)

	// day-first dates must parse in order
	if !records[0].Date.Before(records[1].Date) {
		t.Errorf("dates out of order: %v then %v", records[0].Date, records[1].Date)
	}
}

func TestParseCSVRowErrors(t *testing.T) {
	input := `date,principle,share_value
2024-01-02,10000,1.0
not-a-date,10000,1.0
2024-01-04,oops,1.0
2024-01-05,10000,-1.0
2024-01-06,10000,1.2
`
	records, errs, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("ParseCSV() got %d records, want 2", len(records))
	}
	if len(errs) != 3 {
		t.Fatalf("ParseCSV() got %d row errors, want 3: %v", len(errs), errs)
	}
	// errors are human readable and carry the file row number
	for _, want := range []string{"row 3: invalid date", "row 4: invalid principal", "row 5: invalid share value"} {
		found := false
		for _, e := range errs {
			if strings.HasPrefix(e, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing row error starting with %q in %v", want, errs)
		}
	}
}

func TestParseCSVNoHeader(t *testing.T) {
	if _, _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("ParseCSV() on empty input should fail")
	}
	if _, _, err := ParseCSV(strings.NewReader("just,some,cells\n1,2,3\n")); err == nil {
		t.Error("ParseCSV() without a date header should fail")
	}
}

func TestTemplatesRoundTrip(t *testing.T) {
	for name, template := range map[string]string{
		"full":   TemplateFull(),
		"simple": TemplateSimple(),
	} {
		t.Run(name, func(t *testing.T) {
			records, errs, err := ParseCSV(strings.NewReader(template))
			if err != nil {
				t.Fatalf("ParseCSV(template) error = %v", err)
			}
			if len(errs) != 0 {
				t.Errorf("ParseCSV(template) row errors = %v", errs)
			}
			if len(records) == 0 {
				t.Error("ParseCSV(template) returned no records")
			}
		})
	}
}
