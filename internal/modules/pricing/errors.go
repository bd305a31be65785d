package pricing

import "errors"

var (
	ErrNotFound    = errors.New("pricing rule not found")
	ErrRuleOverlap = errors.New("pricing rule overlaps an existing rule")
	ErrNoPricing   = errors.New("no pricing rule covers the requested time")
	ErrValidation  = errors.New("validation error")
)
