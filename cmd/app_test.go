package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/date"
	"github.com/etnz/fundwatch/store"
	"github.com/shopspring/decimal"
)

func TestLoadSeriesMergesStoredBenchmarks(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "portfolio.csv")
	doc := `date,principle,share_value,sha
2024-01-02,10000,1.0000,2962.28
2024-01-03,10000,0.9985,
2024-01-04,10000,1.0021,
`
	if err := os.WriteFile(csvPath, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	dbPath := filepath.Join(dir, "benchmarks.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	// csi300 is only in the store; sha on the 3rd fills a document gap
	if err := st.Append("sha", date.New(2024, 1, 3), 2967.25); err != nil {
		t.Fatal(err)
	}
	if err := st.Append("csi300", date.New(2024, 1, 2), 3322.16); err != nil {
		t.Fatal(err)
	}
	st.Close()

	oldCSV, oldStore := *csvFile, *storeFile
	*csvFile, *storeFile = csvPath, dbPath
	defer func() { *csvFile, *storeFile = oldCSV, oldStore }()

	s, err := loadSeries()
	if err != nil {
		t.Fatalf("loadSeries() error = %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("loadSeries() has %d records", s.Len())
	}

	if level, ok := s[1].Benchmark("sha"); !ok || level != 2967.25 {
		t.Errorf("sha on 2024-01-03 = %v, %v, want the stored level", level, ok)
	}
	if level, ok := s[0].Benchmark("csi300"); !ok || level != 3322.16 {
		t.Errorf("csi300 on 2024-01-02 = %v, %v, want the stored level", level, ok)
	}
	// merged levels forward-fill like native ones
	if level, ok := s[2].Benchmark("csi300"); !ok || level != 3322.16 {
		t.Errorf("csi300 on 2024-01-04 = %v, %v, want forward filled", level, ok)
	}
}

func TestLoadSeriesWithoutStore(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "portfolio.csv")
	doc := `date,principle,share_value
2024-01-02,10000,1.0
2024-01-03,10000,1.1
`
	if err := os.WriteFile(csvPath, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	oldCSV, oldStore := *csvFile, *storeFile
	*csvFile, *storeFile = csvPath, filepath.Join(dir, "absent.db")
	defer func() { *csvFile, *storeFile = oldCSV, oldStore }()

	s, err := loadSeries()
	if err != nil {
		t.Fatalf("loadSeries() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("loadSeries() has %d records", s.Len())
	}
}

func TestMergeDocumentCellsWin(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "benchmarks.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Append("sha", date.New(2024, 1, 2), 9999); err != nil {
		t.Fatal(err)
	}
	st.Close()

	oldStore := *storeFile
	*storeFile = dbPath
	defer func() { *storeFile = oldStore }()

	s := fundwatch.Normalize([]fundwatch.DailyRecord{
		{
			Date:       date.New(2024, 1, 2),
			Principal:  decimal.NewFromInt(10000),
			ShareValue: 1.0,
			Benchmarks: map[string]float64{"sha": 2962.28},
		},
		{
			Date:       date.New(2024, 1, 3),
			Principal:  decimal.NewFromInt(10000),
			ShareValue: 1.1,
		},
	})
	merged := mergeStoredBenchmarks(s)
	if level, _ := merged[0].Benchmark("sha"); level != 2962.28 {
		t.Errorf("sha = %v, the document cell must win over the store", level)
	}
}
