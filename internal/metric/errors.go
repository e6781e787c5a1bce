package metric

import "codeberg.org/mutker/barstatus/internal/errors"

const (
	ErrInvalidConfig  = errors.ErrInvalidConfig
	ErrRequestFailed  = errors.ErrorCode("metric_request_failed")
	ErrBadStatus      = errors.ErrorCode("metric_bad_status")
	ErrMalformedEntry = errors.ErrorCode("metric_malformed_entry")
	ErrEmptyResponse  = errors.ErrorCode("metric_empty_response")
)
