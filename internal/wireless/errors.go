package wireless

import "codeberg.org/mutker/barstatus/internal/errors"

const (
	ErrInitFailed  = errors.ErrorCode("wireless_init_failed")
	ErrQueryFailed = errors.ErrorCode("wireless_query_failed")
	ErrNoInterface = errors.ErrorCode("wireless_no_interface")
)
