package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"delivery-fees/internal/core/cache"
	"delivery-fees/internal/features/deliveryfee/domain"
)

const parametersCacheKey = "delivery_fee_parameters"

// RedisParameterRepository implements ports.ParameterRepository as a single JSON document.
type RedisParameterRepository struct {
	cache cache.Cache
}

// NewRedisParameterRepository creates a new RedisParameterRepository.
func NewRedisParameterRepository(c cache.Cache) *RedisParameterRepository {
	return &RedisParameterRepository{
		cache: c,
	}
}

// Save overwrites the stored snapshot. Saving the same snapshot twice is harmless.
func (r *RedisParameterRepository) Save(ctx context.Context, params domain.DeliveryFeeParameters) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal fee parameters: %w", err)
	}

	if err := r.cache.Set(ctx, parametersCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save fee parameters: %w", err)
	}

	return nil
}

// Load returns the stored snapshot, or nil if none has been saved.
func (r *RedisParameterRepository) Load(ctx context.Context) (*domain.DeliveryFeeParameters, error) {
	data, err := r.cache.Get(ctx, parametersCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load fee parameters: %w", err)
	}

	// A document missing a field would silently zero it.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fee parameters: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, &domain.ValidationError{Field: field, Reason: "missing from stored parameters"}
		}
	}

	var params domain.DeliveryFeeParameters
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fee parameters: %w", err)
	}

	return &params, nil
}

var requiredFields = []string{
	domain.FieldBaseRate,
	domain.FieldDistanceRatePerKm,
	domain.FieldFreeDistanceThreshold,
	domain.FieldWeightRatePerKg,
	domain.FieldFreeWeightThreshold,
	domain.FieldRainyWeatherFee,
	domain.FieldExtremeWeatherFee,
}
