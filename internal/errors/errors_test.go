package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"codeberg.org/mutker/barstatus/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	f := errors.New()

	assert.Equal(t, "Failed to write status bar output", f.New(errors.ErrOutput).Error())
	assert.Equal(t, "custom", f.WithMessage(errors.ErrOutput, "custom").Error())
	assert.Equal(t, "Invalid log level: loud", f.WithData(errors.ErrInvalidLogLevel, "loud").Error())

	cause := stderrors.New("broken pipe")
	assert.Equal(t, "Failed to write status bar output: broken pipe", f.Wrap(errors.ErrOutput, cause).Error())
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	err := errors.New().New(errors.ErrorCode("made_up"))
	assert.Equal(t, "made_up", err.Error())
}

func TestWrapUnwraps(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.New().Wrap(errors.ErrTelemetry, cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, errors.ErrTelemetry, err.Code())
}

func TestHasCode(t *testing.T) {
	f := errors.New()
	inner := f.Wrap(errors.ErrTelemetry, stderrors.New("no battery"))
	outer := fmt.Errorf("tick: %w", f.Wrap(errors.ErrInitApp, inner))

	assert.True(t, errors.HasCode(outer, errors.ErrInitApp))
	assert.True(t, errors.HasCode(outer, errors.ErrTelemetry))
	assert.False(t, errors.HasCode(outer, errors.ErrOutput))
	assert.False(t, errors.HasCode(nil, errors.ErrOutput))
}
