package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ascendant-service/internal/domain"
	"github.com/couchcryptid/ascendant-service/internal/observability"
)

// Pipeline orchestrates one ascendant computation: validate, geocode,
// resolve the zone, normalize civil time, query the ephemeris and map the
// result to a sign. The first failing step ends the computation.
type Pipeline struct {
	places  domain.PlaceResolver
	zones   domain.ZoneResolver
	eph     domain.Ephemeris
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New creates a Pipeline with the given collaborators and observability.
func New(places domain.PlaceResolver, zones domain.ZoneResolver, eph domain.Ephemeris, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		places:  places,
		zones:   zones,
		eph:     eph,
		logger:  logger,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
}

// SetClock swaps the time source used for duration metrics. Pass nil to
// reset to real time.
func (p *Pipeline) SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	p.clock = c
}

// CheckReadiness reports whether every collaborator is wired and the zone
// tables answer for a known point.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.places == nil || p.zones == nil || p.eph == nil {
		return errors.New("pipeline collaborators not configured")
	}
	if _, err := p.zones.Zone(51.4779, 0); err != nil {
		return fmt.Errorf("zone resolver: %w", err)
	}
	return nil
}

// Compute runs the full computation for q.
func (p *Pipeline) Compute(ctx context.Context, q domain.BirthQuery) (domain.Response, error) {
	start := p.clock.Now()
	resp, err := p.compute(ctx, q)

	kind := domain.ErrorKind(err)
	p.metrics.Requests.WithLabelValues(kind).Inc()
	p.metrics.RequestDuration.Observe(p.clock.Since(start).Seconds())

	if err != nil {
		p.logger.Info("ascendant computation failed",
			"kind", kind,
			"date", q.Date,
			"place", q.PlaceText,
			"error", err,
		)
		return domain.Response{}, err
	}

	p.logger.Debug("ascendant computed",
		"place", q.PlaceText,
		"tz", resp.TZName,
		"utc", resp.UTCISO,
		"ascendant", resp.AscDegreeFormatted,
	)
	return resp, nil
}

func (p *Pipeline) compute(ctx context.Context, q domain.BirthQuery) (domain.Response, error) {
	if err := q.Validate(); err != nil {
		return domain.Response{}, err
	}

	clock, assumed := domain.EffectiveTime(q)
	if assumed {
		p.metrics.TimeAssumed.Inc()
	}

	coords, err := p.places.Resolve(ctx, q.PlaceText)
	if err != nil {
		return domain.Response{}, fmt.Errorf("resolve place %q: %w", q.PlaceText, err)
	}

	tzName, err := p.zones.Zone(coords.Lat, coords.Lon)
	if err != nil {
		return domain.Response{}, fmt.Errorf("resolve zone: %w", err)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return domain.Response{}, fmt.Errorf("load zone %q: %w", tzName, err)
	}

	instant, err := domain.NormalizeCivilTime(q.Date, clock, loc)
	if err != nil {
		return domain.Response{}, err
	}

	utc := instant.UTC
	jd := p.eph.JulianDay(utc.Year(), utc.Month(), utc.Day(), instant.FractionalHour)
	angles, err := p.eph.Houses(jd, coords.Lat, coords.Lon, domain.Placidus)
	if err != nil {
		return domain.Response{}, fmt.Errorf("compute houses: %w", err)
	}

	asc := domain.AscendantFromLongitude(angles.Ascendant)
	return domain.NewResponse(asc, instant, tzName, coords, assumed), nil
}
