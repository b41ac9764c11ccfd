package press

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

// Run executes a simulation: health check, submit, optional read-back.
// Unregistered and store-error answers are counted, not returned as errors.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	cfg.Normalize()
	stats := &Stats{StartTime: time.Now()}
	log := logger.Named("press")

	log.Info(ctx, "starting button press simulation",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("presses", cfg.Presses),
		logger.Int("workers", cfg.Workers),
		logger.Any("serialNumbers", cfg.SerialNumbers),
		logger.String("timeout", cfg.Timeout.String()))

	client := NewHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})

	if err := client.Healthy(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	for _, r := range submitPresses(ctx, cfg, client, generatePresses(cfg)) {
		stats.add(r)
	}

	if cfg.Verify {
		if err := verifyRecorded(ctx, client, stats); err != nil {
			return stats, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("simulation interrupted: %w", err)
	}
	return stats, nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	var recordedRate, pressesPerSecond float64
	if stats.Submitted > 0 {
		recordedRate = float64(stats.Recorded) / float64(stats.Submitted) * percentageMultiplier
	}
	if stats.Duration > 0 {
		pressesPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	logger.Named("press").Info(ctx, "final statistics",
		logger.Int("submitted", stats.Submitted),
		logger.Int("recorded", stats.Recorded),
		logger.Int("unregistered", stats.Unregistered),
		logger.Int("storeErrors", stats.StoreErrors),
		logger.Int("failed", stats.Failed),
		logger.Int("verified", stats.Verified),
		logger.String("duration", stats.Duration.String()),
		logger.Any("recordedRate", recordedRate),
		logger.Any("pressesPerSecond", pressesPerSecond))
}
