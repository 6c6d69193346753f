package interest

type ValidationCalculator struct {
	calculator Calculator
}

func NewValidationCalculator(calculator Calculator) *ValidationCalculator {
	return &ValidationCalculator{calculator: calculator}
}

func (v *ValidationCalculator) Calculate(req Request) (Result, error) {
	if req.Principal < 0 || req.Rate < 0 || req.Time < 0 {
		return Result{}, ErrInvalidInput
	}

	return v.calculator.Calculate(req)
}
