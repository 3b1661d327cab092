// Package app wires configuration to concrete collaborators.
package app

import (
	"log/slog"

	"github.com/couchcryptid/ascendant-service/internal/adapter/ephemeris"
	"github.com/couchcryptid/ascendant-service/internal/adapter/geocache"
	"github.com/couchcryptid/ascendant-service/internal/adapter/mapbox"
	"github.com/couchcryptid/ascendant-service/internal/adapter/nominatim"
	"github.com/couchcryptid/ascendant-service/internal/adapter/tz"
	"github.com/couchcryptid/ascendant-service/internal/config"
	"github.com/couchcryptid/ascendant-service/internal/domain"
	"github.com/couchcryptid/ascendant-service/internal/observability"
	"github.com/couchcryptid/ascendant-service/internal/pipeline"
)

// NewPlaceResolver builds the configured geocoder, wrapped in the place
// cache unless GEOCODER_CACHE_SIZE is 0.
func NewPlaceResolver(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) domain.PlaceResolver {
	var resolver domain.PlaceResolver
	switch cfg.GeocoderProvider {
	case config.ProviderMapbox:
		resolver = mapbox.NewClient(cfg.MapboxToken, cfg.GeocoderTimeout, metrics, logger)
	default:
		resolver = nominatim.NewClient(cfg.NominatimURL, cfg.NominatimUserAgent,
			cfg.GeocoderTimeout, cfg.NominatimRate, metrics, logger)
	}
	logger.Info("geocoder configured",
		"provider", cfg.GeocoderProvider,
		"timeout", cfg.GeocoderTimeout,
		"cache_size", cfg.GeocoderCacheSize,
	)

	if cfg.GeocoderCacheSize > 0 {
		resolver = geocache.New(resolver, cfg.GeocoderCacheSize, cfg.RequestTimeout, metrics)
	}
	return resolver
}

// NewPipeline builds the computation pipeline with production collaborators.
func NewPipeline(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *pipeline.Pipeline {
	return pipeline.New(
		NewPlaceResolver(cfg, metrics, logger),
		tz.NewResolver(),
		ephemeris.NewEngine(),
		logger,
		metrics,
	)
}
