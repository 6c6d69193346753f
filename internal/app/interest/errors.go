package interest

import "errors"

var (
	ErrInvalidInput   = errors.New("principal, rate and time must be non-negative")
	ErrInvalidNumber  = errors.New("invalid numeric input")
	ErrSelfTestFailed = errors.New("self-test failed")
	ErrUsage          = errors.New("invalid usage")
)
