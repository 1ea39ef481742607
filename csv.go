package fundwatch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/fundwatch/date"
	"github.com/shopspring/decimal"
)

// Column names recognized in the two supported upload layouts. "principle" is
// the spelling the exporting spreadsheets actually use, so it is the one we
// accept.
const (
	colDate        = "date"
	colPrincipal   = "principle"
	colShareValue  = "share_value"
	colMarketValue = "market_value"
)

// ParseCSV reads a portfolio valuation export and returns the parsed daily
// records together with the list of row-level problems encountered.
//
// Two layouts are recognized:
//
//   - full: header "date,principle,share_value[,benchmark...]" on the first
//     line; the share value is taken as-is and any further columns are
//     benchmark index levels.
//   - simplified: an ignorable sheet label on the first line, then the header
//     "date,principle,market_value"; the share value is derived from the
//     market value by tracking the units implied by principal movements.
//
// Dates are accepted in YYYY-MM-DD or DD/MM/YYYY, disambiguated by whichever
// layout matches. A malformed row is skipped and reported as a human-readable
// string in errs; only input without a usable header returns a non-nil error.
func ParseCSV(r io.Reader) (records []DailyRecord, errs []string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read csv: %w", err)
	}

	// The header is on the first line (full layout) or the second
	// (simplified layout, below a sheet label).
	headerIdx := -1
	for i := 0; i < len(rows) && i < 2; i++ {
		if len(rows[i]) >= 3 && normalizeHeader(rows[i][0]) == colDate {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil, fmt.Errorf("no header row found: want %q as first column", colDate)
	}

	header := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		header[i] = normalizeHeader(h)
	}
	if header[1] != colPrincipal {
		return nil, nil, fmt.Errorf("unsupported header: want %q as second column, got %q", colPrincipal, rows[headerIdx][1])
	}

	// Rows are numbered as they appear in the file, starting at 1.
	firstRow := headerIdx + 2
	switch header[2] {
	case colShareValue:
		records, errs = parseFull(rows[headerIdx+1:], header[3:], firstRow)
	case colMarketValue:
		records, errs = parseSimplified(rows[headerIdx+1:], firstRow)
	default:
		return nil, nil, fmt.Errorf("unsupported header: want %q or %q as third column, got %q", colShareValue, colMarketValue, rows[headerIdx][2])
	}
	return records, errs, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// parseDay accepts both supported date layouts.
func parseDay(cell string) (date.Date, error) {
	cell = strings.TrimSpace(cell)
	if d, err := date.Parse(cell); err == nil {
		return d, nil
	}
	return date.ParseDayFirst(cell)
}

// parseAmount parses a decimal cell; empty and non-numeric cells are invalid.
func parseAmount(cell string) (decimal.Decimal, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, fmt.Errorf("empty cell")
	}
	return decimal.NewFromString(cell)
}

// parseFull handles the "date,principle,share_value[,benchmark...]" layout.
func parseFull(rows [][]string, benchmarks []string, firstRow int) (records []DailyRecord, errs []string) {
	for i, row := range rows {
		n := firstRow + i
		if isBlank(row) {
			continue
		}
		if len(row) < 3 {
			errs = append(errs, fmt.Sprintf("row %d: want at least 3 columns, got %d", n, len(row)))
			continue
		}
		day, err := parseDay(row[0])
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: invalid date %q", n, row[0]))
			continue
		}
		principal, err := parseAmount(row[1])
		if err != nil || principal.IsNegative() {
			errs = append(errs, fmt.Sprintf("row %d: invalid principal %q", n, row[1]))
			continue
		}
		share, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || share <= 0 {
			errs = append(errs, fmt.Sprintf("row %d: invalid share value %q", n, row[2]))
			continue
		}

		rec := DailyRecord{Date: day, Principal: principal, ShareValue: share}
		bad := false
		for j, name := range benchmarks {
			if j+3 >= len(row) {
				break
			}
			cell := strings.TrimSpace(row[j+3])
			if cell == "" {
				continue // benchmark not observed that day
			}
			level, err := strconv.ParseFloat(cell, 64)
			if err != nil || level <= 0 {
				errs = append(errs, fmt.Sprintf("row %d: invalid %s level %q", n, name, cell))
				bad = true
				break
			}
			if rec.Benchmarks == nil {
				rec.Benchmarks = make(map[string]float64)
			}
			rec.Benchmarks[name] = level
		}
		if bad {
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

// parseSimplified handles the "date,principle,market_value" layout. The share
// value is not in the file; it is derived by tracking the units outstanding:
// a principal increase buys units at the last known share value, a decrease
// redeems them, and each day's share value is market value divided by units.
// Unit arithmetic is exact decimal so that long series do not drift.
func parseSimplified(rows [][]string, firstRow int) (records []DailyRecord, errs []string) {
	units := decimal.Zero
	share := decimal.NewFromInt(1) // the NAV starts at 1.0 by convention
	lastPrincipal := decimal.Zero

	for i, row := range rows {
		n := firstRow + i
		if isBlank(row) {
			continue
		}
		if len(row) < 3 {
			errs = append(errs, fmt.Sprintf("row %d: want 3 columns, got %d", n, len(row)))
			continue
		}
		day, err := parseDay(row[0])
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: invalid date %q", n, row[0]))
			continue
		}
		principal, err := parseAmount(row[1])
		if err != nil || principal.IsNegative() {
			errs = append(errs, fmt.Sprintf("row %d: invalid principal %q", n, row[1]))
			continue
		}
		market, err := parseAmount(row[2])
		if err != nil || !market.IsPositive() {
			errs = append(errs, fmt.Sprintf("row %d: invalid market value %q", n, row[2]))
			continue
		}

		// A principal movement is a subscription or redemption priced at
		// the last known share value.
		if delta := principal.Sub(lastPrincipal); !delta.IsZero() && share.IsPositive() {
			units = units.Add(delta.Div(share))
		}
		if !units.IsPositive() {
			errs = append(errs, fmt.Sprintf("row %d: cannot derive share value with no units outstanding", n))
			continue
		}
		share = market.Div(units)
		lastPrincipal = principal

		records = append(records, DailyRecord{
			Date:       day,
			Principal:  principal,
			ShareValue: share.InexactFloat64(),
		})
	}
	return records, errs
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
