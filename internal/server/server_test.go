package server

import (
	"testing"

	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig()
		assert.NilError(t, err)
		assert.Equal(t, config.Transport, TransportStdio)
		assert.Equal(t, config.Port, 8007)
		assert.Equal(t, config.LogLevel, "info")
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("EXCEL_MCP_TRANSPORT", "http")
		t.Setenv("EXCEL_MCP_PORT", "9000")
		t.Setenv("EXCEL_MCP_LOG_LEVEL", "debug")
		config, err := LoadConfig()
		assert.NilError(t, err)
		assert.Equal(t, config.Transport, TransportHTTP)
		assert.Equal(t, config.Port, 9000)
		assert.Equal(t, config.LogLevel, "debug")
	})

	t.Run("invalid transport", func(t *testing.T) {
		t.Setenv("EXCEL_MCP_TRANSPORT", "carrier-pigeon")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid environment configuration")
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("EXCEL_MCP_LOG_LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid environment configuration")
	})
}

func TestNew(t *testing.T) {
	s := New("test", logrus.New())
	assert.Assert(t, s != nil)
	assert.Assert(t, s.server != nil)
}

func TestStartUnknownTransport(t *testing.T) {
	s := New("test", logrus.New())
	err := s.Start(Config{Transport: Transport("smoke-signal")})
	assert.ErrorContains(t, err, "unknown transport")
}
