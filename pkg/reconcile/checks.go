package reconcile

import (
	"math"

	"receipt-ledger/domain"

	"github.com/shopspring/decimal"
)

var (
	// LineTolerance is how far qty x unit price may drift from the line
	// total before the line is flagged.
	LineTolerance = decimal.RequireFromString("0.01")
	// TotalTolerance is the allowed gap between the sum of line totals and
	// the declared receipt total.
	TotalTolerance = decimal.RequireFromString("0.5")
)

// TotalCheck is the advisory receipt level consistency result.
type TotalCheck struct {
	LinesTotal float64 `json:"lines_total"`
	Declared   float64 `json:"declared"`
	Difference float64 `json:"difference"`
	Mismatch   bool    `json:"mismatch"`
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// toFloat converts d back to float64, saturating at the largest finite
// value so the result always encodes as JSON.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// LineTotal is qty x unitPrice computed in decimal so that 3 x 0.1 is 0.3.
// A product outside the float64 range counts as zero.
func LineTotal(qty, unitPrice float64) float64 {
	if !finite(qty) || !finite(unitPrice) {
		return 0
	}
	f, _ := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(unitPrice)).Float64()
	if !finite(f) {
		return 0
	}
	return f
}

// LineHasMathError reports |qty x unit price - line total| > 0.01. A line
// holding a non-finite number is always flagged.
func LineHasMathError(line domain.ReceiptLine) bool {
	if !finite(line.Qty) || !finite(line.UnitPrice) || !finite(line.LineTotal) {
		return true
	}
	product := decimal.NewFromFloat(line.Qty).Mul(decimal.NewFromFloat(line.UnitPrice))
	return product.Sub(decimal.NewFromFloat(line.LineTotal)).Abs().GreaterThan(LineTolerance)
}

// CheckTotals compares the sum of line totals with the declared total.
// Non-finite amounts are left out of the sum.
func CheckTotals(lines []domain.ReceiptLine, declared float64) TotalCheck {
	sum := decimal.Zero
	for _, line := range lines {
		if finite(line.LineTotal) {
			sum = sum.Add(decimal.NewFromFloat(line.LineTotal))
		}
	}
	if !finite(declared) {
		declared = 0
	}
	diff := sum.Sub(decimal.NewFromFloat(declared)).Abs()

	return TotalCheck{
		LinesTotal: toFloat(sum),
		Declared:   declared,
		Difference: toFloat(diff),
		Mismatch:   diff.GreaterThan(TotalTolerance),
	}
}
