package logger_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"debug":   logger.DebugLevel,
		"INFO":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"warning": logger.WarnLevel,
		"error":   logger.ErrorLevel,
	}
	for name, want := range tests {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logger.ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.WarnLevel, true)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, logger.DebugLevel, true)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	err := errors.New().Wrap(errors.ErrOutput, stderrors.New("broken pipe"))
	logger.ErrorWithCode(err).Msg("write failed")

	out := buf.String()
	assert.Contains(t, out, "write failed")
	assert.Contains(t, out, string(errors.ErrOutput))
	assert.Contains(t, out, "broken pipe")
}
