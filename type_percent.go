package fundwatch

import "fmt"

// Percent is a percentage value: Percent(5) means 5%.
type Percent float64

// Equal compares two percentages with a small tolerance, since they are
// usually the result of floating point computations.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Ratio returns the percentage as a plain ratio: Percent(5).Ratio() is 0.05.
func (p Percent) Ratio() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, and zero as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
