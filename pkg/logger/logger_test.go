package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torann/remote-model/pkg/logger"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)

	log.Info("remote call", "endpoint", "users", "status", 200)

	out := buf.String()
	assert.Contains(t, out, `"message":"remote call"`)
	assert.Contains(t, out, `"endpoint":"users"`)
	assert.Contains(t, out, `"status":200`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Discard().Error("dropped", "k", "v")
	})
}
