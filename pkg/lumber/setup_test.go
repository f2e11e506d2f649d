package lumber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMasksSecrets(t *testing.T) {
	tests := []struct {
		name     string
		instance int
	}{
		{"logrus", InstanceLogrusLogger},
		{"zap", InstanceZapLogger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location := filepath.Join(t.TempDir(), "covbridge.log")
			logger, err := NewLogger(LoggingConfig{
				EnableFile:   true,
				FileLevel:    Debug,
				FileLocation: location,
				Secrets:      []string{"11c0ffee"},
			}, false, tt.instance)
			require.NoError(t, err)

			logger.Infof("authenticating with token %s", "11c0ffee")

			content, err := os.ReadFile(location)
			require.NoError(t, err)
			assert.Contains(t, string(content), "authenticating with token")
			assert.NotContains(t, string(content), "11c0ffee")
		})
	}
}

func TestZapLoggerReportsCaller(t *testing.T) {
	location := filepath.Join(t.TempDir(), "covbridge.log")
	logger, err := NewLogger(LoggingConfig{
		EnableFile:   true,
		FileLevel:    Debug,
		FileLocation: location,
	}, false, InstanceZapLogger)
	require.NoError(t, err)

	logger.Infof("polling %d targets", 3)

	content, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(content), "lumber/setup_test.go")
	assert.NotContains(t, string(content), "lumber/zap.go")
}

func TestLoggerPanicf(t *testing.T) {
	tests := []struct {
		name     string
		instance int
	}{
		{"logrus", InstanceLogrusLogger},
		{"zap", InstanceZapLogger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(LoggingConfig{
				EnableFile:   true,
				FileLevel:    Debug,
				FileLocation: filepath.Join(t.TempDir(), "covbridge.log"),
			}, false, tt.instance)
			require.NoError(t, err)

			assert.Panics(t, func() { logger.Panicf("unrecoverable %s", "state") })
			assert.Panics(t, func() { logger.WithFields(Fields{"job": "ledger"}).Panicf("unrecoverable %s", "state") })
		})
	}
}
