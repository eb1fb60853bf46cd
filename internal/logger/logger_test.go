package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plain-mapper/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		level logrus.Level
		json  bool
	}{
		{name: "text debug", cfg: config.LoggingConfig{Level: "debug", Format: "text"}, level: logrus.DebugLevel},
		{name: "json warn", cfg: config.LoggingConfig{Level: "warn", Format: "json"}, level: logrus.WarnLevel, json: true},
		{name: "unknown level", cfg: config.LoggingConfig{Level: "loud"}, level: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.cfg, &bytes.Buffer{})

			assert.Equal(t, tt.level, l.GetLevel())
			if tt.json {
				assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
			}
		})
	}
}

func TestWithType(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	l.WithType("odata.User").WithField("count", 2).Info("converted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "odata.User", entry["type"])
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, 2.0, entry["count"])
}
