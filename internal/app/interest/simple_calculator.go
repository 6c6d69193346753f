package interest

type SimpleCalculator struct{}

func NewSimpleCalculator() *SimpleCalculator {
	return &SimpleCalculator{}
}

func (s *SimpleCalculator) Calculate(req Request) (Result, error) {
	interest := req.Principal * (req.Rate / 100) * req.Time

	// Explicit conversion prevents fusing the addition with the multiplication,
	// so Total is always exactly Principal + Interest.
	return Result{
		Interest: interest,
		Total:    req.Principal + float64(interest),
	}, nil
}
