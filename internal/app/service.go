// Package service wires the registry and the recorder into the button-press
// handler shared by the Lambda and HTTP entry points.
package service

import (
	"context"
	"errors"
	"time"

	repository "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/repository"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/recorder"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/registry"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/metrics"
)

// Service handles button presses: resolve, then record.
type Service struct {
	registry  *registry.Registry
	store     repository.Store
	recorder  *recorder.Recorder
	recOpts   []recorder.Option
	logger    logger.Logger
	startedAt time.Time
	backend   string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRegistry replaces the built-in registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorderOptions forwards options (id generator, clock) to the recorder.
func WithRecorderOptions(opts ...recorder.Option) Option {
	return func(s *Service) {
		s.recOpts = append(s.recOpts, opts...)
	}
}

// New builds a Service over a process-wide store.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		registry:  registry.Default(),
		store:     store,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	s.backend = store.Backend()
	s.recorder = recorder.New(store, s.recOpts...)

	metrics.UpdateRegistryEntries(s.registry.Len())
	return s
}

// HandleButtonEvent is the invocation entry point. It returns nil on success,
// *UnregisteredDeviceError for unknown buttons, or the recorder's
// *recorder.StoreWriteError unchanged.
func (s *Service) HandleButtonEvent(ctx context.Context, ev model.ButtonEvent) error {
	_, err := s.Press(ctx, ev)
	return err
}

// Press is HandleButtonEvent that also returns the stored record.
func (s *Service) Press(ctx context.Context, ev model.ButtonEvent) (model.ActionRecord, error) {
	log := s.logger.With(logger.String("serial_number", ev.SerialNumber))

	action, ok := s.registry.Resolve(ev.SerialNumber)
	if !ok {
		metrics.RecordPress(metrics.OutcomeUnregistered)
		log.Warn(ctx, "button not registered",
			logger.String("click_type", ev.ClickType),
		)
		return model.ActionRecord{}, &UnregisteredDeviceError{SerialNumber: ev.SerialNumber}
	}

	start := time.Now()
	rec, err := s.recorder.Record(ctx, ev.SerialNumber, action)
	metrics.RecordStoreWriteLatency(float64(time.Since(start).Microseconds()) / 1000)

	if err != nil {
		outcome := metrics.OutcomeFailed
		var swe *recorder.StoreWriteError
		if errors.As(err, &swe) {
			outcome = metrics.OutcomeStoreError
			metrics.RecordStoreError(s.backend)
		}
		metrics.RecordPress(outcome)
		log.Error(ctx, "failed to record action",
			logger.String("action", action),
			logger.String("backend", s.backend),
			logger.Error(err),
		)
		return model.ActionRecord{}, err
	}

	metrics.RecordPress(metrics.OutcomeRecorded)
	log.Info(ctx, "action recorded",
		logger.String("id", rec.ID),
		logger.String("action", rec.Action),
		logger.Int64("timestamp", rec.TimeStamp),
		logger.String("click_type", ev.ClickType),
		logger.String("battery_voltage", ev.BatteryVoltage),
	)
	return rec, nil
}

// Record fetches a stored record by id.
func (s *Service) Record(ctx context.Context, id string) (model.ActionRecord, error) {
	return s.store.Get(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"registeredDevices": s.registry.Len(),
		"store":             s.backend,
		"uptimeSeconds":     int64(time.Since(s.startedAt).Seconds()),
	}
}
