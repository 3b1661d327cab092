// Command ascendant-calc computes a single ascendant from flags using the
// same geocoder, zone tables and ephemeris as the HTTP service, and prints
// the JSON response payload. Configuration comes from the environment, as
// for the service.
//
// Usage:
//
//	go run ./cmd/ascendant-calc \
//	  -date 1990-06-15 \
//	  -time 14:30 \
//	  -place "Пловдив, България"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/couchcryptid/ascendant-service/internal/app"
	"github.com/couchcryptid/ascendant-service/internal/config"
	"github.com/couchcryptid/ascendant-service/internal/domain"
	"github.com/couchcryptid/ascendant-service/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	date := flag.String("date", "", "birth date, YYYY-MM-DD")
	clock := flag.String("time", "", "local birth time, HH:MM (optional)")
	place := flag.String("place", "", "birth place, free text")
	unknown := flag.Bool("unknown-time", false, "birth time is unknown; use 12:00 local")
	verbose := flag.Bool("v", false, "log collaborator activity to stderr")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	p := app.NewPipeline(cfg, observability.NewMetrics(), logger)
	resp, err := p.Compute(ctx, domain.BirthQuery{
		Date:        *date,
		Time:        *clock,
		PlaceText:   *place,
		UnknownTime: *unknown,
	})
	if err != nil {
		return errors.New(domain.PublicMessage(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
