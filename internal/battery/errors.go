package battery

import "codeberg.org/mutker/barstatus/internal/errors"

const (
	ErrInitFailed   = errors.ErrorCode("battery_init_failed")
	ErrReadFailed   = errors.ErrorCode("battery_read_failed")
	ErrNoBattery    = errors.ErrorCode("battery_not_found")
	ErrNoFullEnergy = errors.ErrorCode("battery_no_full_energy")
)
