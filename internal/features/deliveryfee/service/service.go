package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-fees/internal/core/logger"
	"delivery-fees/internal/core/metrics"
	"delivery-fees/internal/features/deliveryfee/domain"
	"delivery-fees/internal/features/deliveryfee/ports"

	"go.uber.org/zap"
)

var (
	// ErrAdminRequired is returned when a non-admin caller attempts a write.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrPersistence is returned when a write could not be saved; the current snapshot is unchanged.
	ErrPersistence = errors.New("parameters could not be persisted")
)

const (
	operationUpdate = "update"
	operationReset  = "reset"
)

// PersistHook returns a CommitHook that saves every new snapshot to repo
// before the store publishes it. A request that is already cancelled is not saved.
func PersistHook(repo ports.ParameterRepository, timeout time.Duration) CommitHook {
	return func(ctx context.Context, next domain.DeliveryFeeParameters) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil
	}
}

// FeeService implements ports.FeeService on top of a ParameterStore.
type FeeService struct {
	store   *ParameterStore
	repo    ports.ParameterRepository
	metrics *metrics.FeeMetrics
	logger  *zap.Logger
}

// NewFeeService creates a new FeeService. repo may be nil when parameters are not persisted.
func NewFeeService(store *ParameterStore, repo ports.ParameterRepository, m *metrics.FeeMetrics) *FeeService {
	return &FeeService{
		store:   store,
		repo:    repo,
		metrics: m,
		logger:  logger.Named("deliveryfee"),
	}
}

// Bootstrap loads the persisted snapshot, if any, into the store.
// An invalid stored snapshot is logged and skipped so the service starts on defaults.
func (s *FeeService) Bootstrap(ctx context.Context) error {
	if s.repo == nil {
		s.logger.Info("Fee parameter persistence disabled, using defaults")
		return nil
	}

	stored, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrInvalidInput) {
		s.logger.Warn("Ignoring incomplete stored fee parameters", zap.Error(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("service: failed to load fee parameters: %w", err)
	}
	if stored == nil {
		s.logger.Info("No stored fee parameters, using defaults")
		return nil
	}

	if err := s.store.Load(*stored); err != nil {
		s.logger.Warn("Ignoring invalid stored fee parameters", zap.Error(err))
		return nil
	}

	s.logger.Info("Loaded stored fee parameters", zap.Any("parameters", *stored))
	return nil
}

// Parameters returns the current snapshot and its version.
func (s *FeeService) Parameters(ctx context.Context) domain.VersionedParameters {
	return s.store.CurrentVersioned()
}

// UpdateParameters applies a partial update on behalf of an admin.
func (s *FeeService) UpdateParameters(ctx context.Context, isAdmin bool, patch domain.ParameterPatch) (domain.DeliveryFeeParameters, error) {
	if !isAdmin {
		s.recordWrite(operationUpdate, ErrAdminRequired)
		return domain.DeliveryFeeParameters{}, ErrAdminRequired
	}

	params, err := s.store.Update(ctx, patch)
	s.recordWrite(operationUpdate, err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return domain.DeliveryFeeParameters{}, err
		}
		s.logger.Error("Failed to update fee parameters", zap.Error(err))
		return domain.DeliveryFeeParameters{}, fmt.Errorf("service: failed to update fee parameters: %w", err)
	}

	s.logger.Info("Fee parameters updated", zap.Any("parameters", params))
	return params, nil
}

// ResetParameters restores the defaults on behalf of an admin.
func (s *FeeService) ResetParameters(ctx context.Context, isAdmin bool) (domain.DeliveryFeeParameters, error) {
	if !isAdmin {
		s.recordWrite(operationReset, ErrAdminRequired)
		return domain.DeliveryFeeParameters{}, ErrAdminRequired
	}

	params, err := s.store.Reset(ctx)
	s.recordWrite(operationReset, err)
	if err != nil {
		s.logger.Error("Failed to reset fee parameters", zap.Error(err))
		return domain.DeliveryFeeParameters{}, fmt.Errorf("service: failed to reset fee parameters: %w", err)
	}

	s.logger.Info("Fee parameters reset to defaults")
	return params, nil
}

// Quote prices a delivery. The snapshot is read once, so the returned
// breakdown and parameters always belong together. A ParametersVersion must
// name a snapshot this store published; callers cannot supply their own.
func (s *FeeService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	snapshot := s.store.CurrentVersioned()
	if req.ParametersVersion != "" {
		params, ok := s.store.Lookup(req.ParametersVersion)
		if !ok {
			err := &domain.ValidationError{Field: domain.FieldParametersVersion, Reason: "is unknown or expired"}
			s.recordQuote(req.Weather, err)
			return nil, err
		}
		snapshot = domain.VersionedParameters{DeliveryFeeParameters: params, Version: req.ParametersVersion}
	}

	breakdown, err := domain.Compute(req.Distance, req.Weight, req.Weather, snapshot.DeliveryFeeParameters)
	s.recordQuote(req.Weather, err)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		Breakdown:         breakdown,
		Parameters:        snapshot.DeliveryFeeParameters,
		ParametersVersion: snapshot.Version,
	}, nil
}

func (s *FeeService) recordWrite(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ParameterWrites.WithLabelValues(operation, resultLabel(err)).Inc()
}

func (s *FeeService) recordQuote(weather domain.WeatherCondition, err error) {
	if s.metrics == nil {
		return
	}
	label := string(weather)
	if !weather.IsValid() {
		label = "unknown"
	}
	s.metrics.Quotes.WithLabelValues(label, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, ErrAdminRequired):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
