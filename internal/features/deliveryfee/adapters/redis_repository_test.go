package adapters

import (
	"context"
	"testing"

	"delivery-fees/internal/core/cache"
	"delivery-fees/internal/features/deliveryfee/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*RedisParameterRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisParameterRepository(adapter), mr
}

func TestRedisParameterRepository_LoadEmpty(t *testing.T) {
	repo, _ := setupRepository(t)

	params, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, params)
}

func TestRedisParameterRepository_SaveLoad(t *testing.T) {
	repo, mr := setupRepository(t)
	ctx := context.Background()

	saved := domain.DefaultParameters()
	saved.BaseRate = 125.5
	saved.ExtremeWeatherFee = 0

	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)

	// Stored without expiry under a fixed key.
	assert.True(t, mr.Exists(parametersCacheKey))
	assert.Zero(t, mr.TTL(parametersCacheKey))
}

func TestRedisParameterRepository_SaveIsIdempotent(t *testing.T) {
	repo, mr := setupRepository(t)
	ctx := context.Background()
	params := domain.DefaultParameters()

	require.NoError(t, repo.Save(ctx, params))
	first, err := mr.Get(parametersCacheKey)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, params))
	second, err := mr.Get(parametersCacheKey)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.JSONEq(t, `{
		"baseRate": 100,
		"distanceRatePerKm": 10,
		"freeDistanceThreshold": 3,
		"weightRatePerKg": 20,
		"freeWeightThreshold": 5,
		"rainyWeatherFee": 30,
		"extremeWeatherFee": 50
	}`, second)
}

func TestRedisParameterRepository_LoadMissingField(t *testing.T) {
	repo, mr := setupRepository(t)
	require.NoError(t, mr.Set(parametersCacheKey, `{"baseRate": 100}`))

	params, err := repo.Load(context.Background())

	assert.Nil(t, params)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldDistanceRatePerKm, verr.Field)
}

func TestRedisParameterRepository_LoadCorrupt(t *testing.T) {
	repo, mr := setupRepository(t)
	require.NoError(t, mr.Set(parametersCacheKey, `not-json`))

	params, err := repo.Load(context.Background())

	assert.Nil(t, params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal fee parameters")
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRedisParameterRepository_Unreachable(t *testing.T) {
	repo, mr := setupRepository(t)
	mr.Close()
	ctx := context.Background()

	err := repo.Save(ctx, domain.DefaultParameters())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save fee parameters")

	_, err = repo.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load fee parameters")
}
