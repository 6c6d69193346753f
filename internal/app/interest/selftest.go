package interest

import (
	"fmt"
	"math"
)

const selfTestTolerance = 1e-9

type selfTestCase struct {
	req              Request
	expectedInterest float64
}

var selfTestCases = []selfTestCase{
	{req: Request{Principal: 1000, Rate: 5, Time: 1}, expectedInterest: 50},
	{req: Request{Principal: 2000, Rate: 3.5, Time: 2}, expectedInterest: 140},
	{req: Request{Principal: 0, Rate: 10, Time: 1}, expectedInterest: 0},
}

// SelfTest runs built-in sanity checks against the calculator and reports the first failing case.
func SelfTest(calculator Calculator) error {
	for _, c := range selfTestCases {
		result, err := calculator.Calculate(c.req)
		if err != nil {
			return fmt.Errorf("%w for %+v: %w", ErrSelfTestFailed, c.req, err)
		}

		if math.Abs(result.Interest-c.expectedInterest) >= selfTestTolerance {
			return fmt.Errorf("%w for %+v: got interest %v, expected %v", ErrSelfTestFailed, c.req, result.Interest, c.expectedInterest)
		}

		expectedTotal := c.req.Principal + c.expectedInterest
		if math.Abs(result.Total-expectedTotal) >= selfTestTolerance {
			return fmt.Errorf("%w for %+v: got total %v, expected %v", ErrSelfTestFailed, c.req, result.Total, expectedTotal)
		}
	}

	return nil
}
