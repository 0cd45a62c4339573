package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "uninsured.csv", cfg.DataPath)
	assert.Equal(t, "fraction", cfg.Variant)
	assert.False(t, cfg.EchoSelection)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "dashboard-interactions", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DATA_PATH", "/srv/data/uninsured.csv")
	t.Setenv("DASHBOARD_VARIANT", "Percent")
	t.Setenv("DASHBOARD_ECHO_SELECTION", "true")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-interactions")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/srv/data/uninsured.csv", cfg.DataPath)
	assert.Equal(t, "percent", cfg.Variant)
	assert.True(t, cfg.EchoSelection)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-interactions", cfg.KafkaTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_UnknownVariant(t *testing.T) {
	t.Setenv("DASHBOARD_VARIANT", "heatmap")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_VARIANT")
}

func TestLoad_InvalidEchoSelection(t *testing.T) {
	t.Setenv("DASHBOARD_ECHO_SELECTION", "sometimes")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_ECHO_SELECTION")
}

func TestLoad_InvalidKafkaEnabled(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "maybe")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_ENABLED")
}

func TestLoad_BoolForms(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"T", true},
		{"TRUE", true},
		{"0", false},
		{"F", false},
		{" false ", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DASHBOARD_ECHO_SELECTION", tt.value)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.EchoSelection)
		})
	}
}

func TestLoad_InvalidBoolWrapsParseError(t *testing.T) {
	t.Setenv("DASHBOARD_ECHO_SELECTION", "yes")
	_, err := Load()
	require.Error(t, err)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `invalid DASHBOARD_ECHO_SELECTION: strconv.ParseBool: parsing "yes"`)
}
