package property

import "errors"

var (
	ErrNotFound   = errors.New("property not found")
	ErrValidation = errors.New("validation error")
)
