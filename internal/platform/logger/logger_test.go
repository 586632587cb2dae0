package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankcli/internal/platform/logger"
)

func TestNew(t *testing.T) {
	t.Run("text by default and drops info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hidden")
		log.Warn("shown")
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "msg=shown")
	})

	t.Run("json with level and attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelInfo),
			logger.WithAttr(slog.String("app", "bank")),
		)
		log.Info("deposit", logger.AccountID(7), logger.Amount("10.00"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "bank", entry["app"])
		assert.EqualValues(t, 7, entry["account_id"])
		assert.Equal(t, "10.00", entry["amount"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotPanics(t, func() { logger.Discard().Error("nothing") })
	})
}

func TestParse(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, "***.982.247-**", logger.CPF("529.982.247-25").Value.String())
	assert.Equal(t, "***.982.247-**", logger.CPF("52998224725").Value.String())
	assert.Equal(t, "***", logger.CPF("123").Value.String())

	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.Equal(t, "component", logger.Component("cli").Key)
	assert.Equal(t, "operation", logger.Operation("d").Key)
}
