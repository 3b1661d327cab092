package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapboxToken = "pk.test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, ProviderNominatim, cfg.GeocoderProvider)
	assert.Equal(t, 5*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, 1000, cfg.GeocoderCacheSize)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.NominatimURL)
	assert.Equal(t, "AscendantCalculator/1.0", cfg.NominatimUserAgent)
	assert.InDelta(t, 1.0, cfg.NominatimRate, 1e-9)
	assert.Empty(t, cfg.MapboxToken)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("REQUEST_TIMEOUT", "20s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GEOCODER_PROVIDER", "Mapbox")
	t.Setenv("GEOCODER_TIMEOUT", "2s")
	t.Setenv("GEOCODER_CACHE_SIZE", "0")
	t.Setenv("NOMINATIM_URL", "http://localhost:7070/search")
	t.Setenv("NOMINATIM_USER_AGENT", "test-agent")
	t.Setenv("NOMINATIM_RATE", "2.5")
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, ProviderMapbox, cfg.GeocoderProvider)
	assert.Equal(t, 2*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, 0, cfg.GeocoderCacheSize)
	assert.Equal(t, "http://localhost:7070/search", cfg.NominatimURL)
	assert.Equal(t, "test-agent", cfg.NominatimUserAgent)
	assert.InDelta(t, 2.5, cfg.NominatimRate, 1e-9)
	assert.Equal(t, testMapboxToken, cfg.MapboxToken)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"REQUEST_TIMEOUT", "GEOCODER_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "-1s")
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("GEOCODER_CACHE_SIZE", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_CACHE_SIZE")
}

func TestLoad_InvalidNominatimRate(t *testing.T) {
	t.Setenv("NOMINATIM_RATE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOMINATIM_RATE")
}

func TestLoad_MapboxWithoutToken(t *testing.T) {
	t.Setenv("GEOCODER_PROVIDER", "mapbox")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAPBOX_TOKEN")
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("GEOCODER_PROVIDER", "google")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_PROVIDER")
}
