//go:generate mockery

package interest

// Request holds the inputs of a single calculation.
type Request struct {
	Principal float64
	Rate      float64 // percent per year
	Time      float64 // years
}

// Result holds the derived interest and the total amount.
type Result struct {
	Interest float64
	Total    float64
}

// Calculator defines a contract for computing simple interest.
type Calculator interface {
	Calculate(req Request) (Result, error)
}

// NewCalculator returns a Calculator that rejects negative inputs before computing.
func NewCalculator() Calculator {
	return NewValidationCalculator(NewSimpleCalculator())
}

// Calculate computes simple interest for the given values with the default calculator.
func Calculate(principal, rate, time float64) (Result, error) {
	return NewCalculator().Calculate(Request{
		Principal: principal,
		Rate:      rate,
		Time:      time,
	})
}
