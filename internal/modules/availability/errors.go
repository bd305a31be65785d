package availability

import "errors"

var (
	ErrNotFound     = errors.New("availability block not found")
	ErrBlockOverlap = errors.New("block overlaps an existing blocked slot")
	ErrValidation   = errors.New("validation error")
)
