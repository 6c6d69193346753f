package cli

import (
	"fmt"
	"math"

	"github.com/ormanli/simple-interest/internal/app/interest"
)

const (
	invalidNumberMessage = "Invalid numeric input. Exiting."
	selfTestPassed       = "All tests passed."
)

type report struct {
	result interest.Result
	err    error
}

func (r report) String() string {
	if r.err != nil {
		return fmt.Sprintf("Error: %s", r.err)
	}

	return fmt.Sprintf("Interest: %s\nTotal Amount: %s", formatAmount(r.result.Interest), formatAmount(r.result.Total))
}

// formatAmount renders v with two decimals, spelling non-finite values as inf, -inf and nan.
func formatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
