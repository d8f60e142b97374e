package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	defaults := DefaultParameters()

	tests := []struct {
		name     string
		distance float64
		weight   float64
		weather  WeatherCondition
		params   DeliveryFeeParameters
		expected FeeBreakdown
	}{
		{
			name:     "AtDistanceThresholdUnderWeight",
			distance: 3, weight: 1, weather: WeatherNormal, params: defaults,
			expected: FeeBreakdown{BaseFee: 100, TotalFee: 100},
		},
		{
			name:     "RainyAboveBothThresholds",
			distance: 5, weight: 7, weather: WeatherRainy, params: defaults,
			expected: FeeBreakdown{BaseFee: 100, DistanceFee: 20, WeightFee: 40, WeatherFee: 30, TotalFee: 190},
		},
		{
			name:     "MinusculeExcessRoundsToZero",
			distance: 3.0000001, weight: 5, weather: WeatherExtreme, params: defaults,
			expected: FeeBreakdown{BaseFee: 100, WeatherFee: 50, TotalFee: 150},
		},
		{
			name:     "AtWeightThreshold",
			distance: 0, weight: 5, weather: WeatherNormal, params: defaults,
			expected: FeeBreakdown{BaseFee: 100, TotalFee: 100},
		},
		{
			name:     "HalfRoundsAwayFromZero",
			distance: 3.25, weight: 0, weather: WeatherNormal,
			params:   DeliveryFeeParameters{BaseRate: 0, DistanceRatePerKm: 10, FreeDistanceThreshold: 3},
			expected: FeeBreakdown{DistanceFee: 3, TotalFee: 3},
		},
		{
			name:     "TwoAndAHalfIsNotBankersRounded",
			distance: 0, weight: 5.125, weather: WeatherNormal,
			params:   DeliveryFeeParameters{WeightRatePerKg: 20, FreeWeightThreshold: 5},
			expected: FeeBreakdown{WeightFee: 3, TotalFee: 3},
		},
		{
			name:     "FractionalFlatFeesUsedAsIs",
			distance: 4, weight: 0, weather: WeatherRainy,
			params: DeliveryFeeParameters{
				BaseRate: 99.5, DistanceRatePerKm: 10, FreeDistanceThreshold: 3, RainyWeatherFee: 0.25,
			},
			expected: FeeBreakdown{BaseFee: 99.5, DistanceFee: 10, WeatherFee: 0.25, TotalFee: 109.75},
		},
		{
			name:     "ZeroThresholdsChargeFromFirstUnit",
			distance: 1.04, weight: 0.5, weather: WeatherNormal,
			params:   DeliveryFeeParameters{DistanceRatePerKm: 10, WeightRatePerKg: 3},
			expected: FeeBreakdown{DistanceFee: 10, WeightFee: 2, TotalFee: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.distance, tt.weight, tt.weather, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompute_TotalIsExactSum(t *testing.T) {
	params := DeliveryFeeParameters{
		BaseRate: 12.3, DistanceRatePerKm: 7.7, FreeDistanceThreshold: 1.1,
		WeightRatePerKg: 3.3, FreeWeightThreshold: 0.4, RainyWeatherFee: 4.4, ExtremeWeatherFee: 8.8,
	}

	for _, weather := range []WeatherCondition{WeatherNormal, WeatherRainy, WeatherExtreme} {
		for d := 0.0; d <= 10; d += 0.7 {
			for w := 0.0; w <= 10; w += 0.9 {
				b, err := Compute(d, w, weather, params)
				require.NoError(t, err)
				assert.Equal(t, b.BaseFee+b.DistanceFee+b.WeightFee+b.WeatherFee, b.TotalFee)
				assert.Equal(t, params.BaseRate, b.BaseFee)
			}
		}
	}
}

func TestCompute_ThresholdProperty(t *testing.T) {
	params := DefaultParameters()

	for d := 0.0; d <= 8; d += 0.05 {
		b, err := Compute(d, 0, WeatherNormal, params)
		require.NoError(t, err)

		if d <= params.FreeDistanceThreshold {
			assert.Zero(t, b.DistanceFee, "distance %v", d)
		} else {
			assert.Equal(t, math.Round((d-params.FreeDistanceThreshold)*params.DistanceRatePerKm), b.DistanceFee, "distance %v", d)
		}
	}

	for w := 0.0; w <= 12; w += 0.05 {
		b, err := Compute(0, w, WeatherNormal, params)
		require.NoError(t, err)

		if w <= params.FreeWeightThreshold {
			assert.Zero(t, b.WeightFee, "weight %v", w)
		} else {
			assert.Equal(t, math.Round((w-params.FreeWeightThreshold)*params.WeightRatePerKg), b.WeightFee, "weight %v", w)
		}
	}
}

func TestCompute_ValidationErrors(t *testing.T) {
	invalidParams := DefaultParameters()
	invalidParams.ExtremeWeatherFee = -1

	tests := []struct {
		name          string
		distance      float64
		weight        float64
		weather       WeatherCondition
		params        DeliveryFeeParameters
		expectedField string
	}{
		{name: "NegativeDistance", distance: -0.1, weather: WeatherNormal, params: DefaultParameters(), expectedField: FieldDistance},
		{name: "NaNDistance", distance: math.NaN(), weather: WeatherNormal, params: DefaultParameters(), expectedField: FieldDistance},
		{name: "InfWeight", weight: math.Inf(1), weather: WeatherNormal, params: DefaultParameters(), expectedField: FieldWeight},
		{name: "NegativeWeight", weight: -3, weather: WeatherNormal, params: DefaultParameters(), expectedField: FieldWeight},
		{name: "UnknownWeather", weather: "snowy", params: DefaultParameters(), expectedField: FieldWeather},
		{name: "EmptyWeather", weather: "", params: DefaultParameters(), expectedField: FieldWeather},
		{name: "InvalidSnapshot", weather: WeatherNormal, params: invalidParams, expectedField: FieldExtremeWeatherFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(tt.distance, tt.weight, tt.weather, tt.params)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
			assert.Equal(t, FeeBreakdown{}, b)
		})
	}
}

func TestCompute_Overflow(t *testing.T) {
	huge := DefaultParameters()
	huge.BaseRate = math.MaxFloat64
	huge.ExtremeWeatherFee = math.MaxFloat64

	hugeWeightRate := DefaultParameters()
	hugeWeightRate.WeightRatePerKg = math.MaxFloat64

	tests := []struct {
		name          string
		distance      float64
		weight        float64
		weather       WeatherCondition
		params        DeliveryFeeParameters
		expectedField string
	}{
		{name: "HugeDistance", distance: 1e308, weather: WeatherNormal, params: DefaultParameters(), expectedField: FieldDistance},
		{name: "HugeWeightRate", weight: 10, weather: WeatherNormal, params: hugeWeightRate, expectedField: FieldWeight},
		{name: "HugeFlatFees", weather: WeatherExtreme, params: huge, expectedField: FieldTotalFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(tt.distance, tt.weight, tt.weather, tt.params)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
			assert.Contains(t, verr.Reason, "cannot price this order")
			assert.Equal(t, FeeBreakdown{}, b)
		})
	}

	t.Run("HugeFlatFeeAloneIsPriced", func(t *testing.T) {
		b, err := Compute(0, 0, WeatherNormal, huge)
		require.NoError(t, err)
		assert.Equal(t, math.MaxFloat64, b.TotalFee)
	})
}

func TestParseWeather(t *testing.T) {
	tests := []struct {
		input    string
		expected WeatherCondition
		wantErr  bool
	}{
		{input: "normal", expected: WeatherNormal},
		{input: "Rainy", expected: WeatherRainy},
		{input: "  EXTREME ", expected: WeatherExtreme},
		{input: "snowy", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeather(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
