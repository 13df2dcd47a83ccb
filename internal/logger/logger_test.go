package logger_test

import (
	"bytes"
	"testing"

	"cardflow/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_TagsService(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "cardflow-test", "debug")

	log.Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"service":"cardflow-test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "cardflow-test", "chatty")

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
