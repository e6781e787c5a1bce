package bar

import "codeberg.org/mutker/barstatus/internal/errors"

const (
	ErrOutputFailed = errors.ErrOutput
	ErrEncodeFrame  = errors.ErrorCode("bar_encode_frame_failed")
)
