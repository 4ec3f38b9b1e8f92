package analyses

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidDocument = errors.New("invalid resume document")
	ErrEmptyText       = errors.New("no text to analyze")
)

const (
	ErrorCodeValidation  = "validation_error"
	ErrorCodeNotFound    = "not_found"
	ErrorCodeUnsupported = "unsupported_media_type"
	ErrorCodeTooLarge    = "payload_too_large"
	ErrorCodeInternal    = "internal_error"
)
