package ports

import (
	"context"

	"delivery-fees/internal/features/deliveryfee/domain"
)

// FeeService defines the primary port used by the HTTP layer.
type FeeService interface {
	Parameters(ctx context.Context) domain.VersionedParameters
	UpdateParameters(ctx context.Context, isAdmin bool, patch domain.ParameterPatch) (domain.DeliveryFeeParameters, error)
	ResetParameters(ctx context.Context, isAdmin bool) (domain.DeliveryFeeParameters, error)
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
}

// ParameterRepository defines the secondary port for persisting the current snapshot.
type ParameterRepository interface {
	// Load returns the stored snapshot, or nil when nothing has been saved yet.
	Load(ctx context.Context) (*domain.DeliveryFeeParameters, error)
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, params domain.DeliveryFeeParameters) error
}
