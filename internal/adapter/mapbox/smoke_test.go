//go:build mapbox

package mapbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ascendant-service/internal/observability"
)

// These tests hit the real Mapbox API and require a valid MAPBOX_TOKEN env var.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_Resolve(t *testing.T) {
	c := smokeClient(t)

	coords, err := c.Resolve(context.Background(), "Varna, Bulgaria")
	require.NoError(t, err)

	assert.InDelta(t, 43.21, coords.Lat, 0.1, "lat should be near Varna")
	assert.InDelta(t, 27.91, coords.Lon, 0.1, "lon should be near Varna")
}
