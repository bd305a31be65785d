package court

import "errors"

var (
	ErrNotFound         = errors.New("court not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrForbidden        = errors.New("forbidden")
	ErrValidation       = errors.New("validation error")
)
