package domain

import (
	"math"
	"strings"
)

// WeatherCondition selects the weather surcharge.
type WeatherCondition string

const (
	WeatherNormal  WeatherCondition = "normal"
	WeatherRainy   WeatherCondition = "rainy"
	WeatherExtreme WeatherCondition = "extreme"
)

// Field names for Compute inputs.
const (
	FieldDistance = "distance"
	FieldWeight   = "weight"
	FieldWeather  = "weather"
	FieldTotalFee = "totalFee"
)

const overflowReason = "fee overflows; cannot price this order"

// IsValid reports whether w is one of the known conditions.
func (w WeatherCondition) IsValid() bool {
	switch w {
	case WeatherNormal, WeatherRainy, WeatherExtreme:
		return true
	}
	return false
}

// ParseWeather normalizes case and surrounding whitespace.
// Unknown values are rejected rather than priced as normal weather.
func ParseWeather(s string) (WeatherCondition, error) {
	w := WeatherCondition(strings.ToLower(strings.TrimSpace(s)))
	if !w.IsValid() {
		return "", newValidationError(FieldWeather, "must be one of normal, rainy, extreme")
	}
	return w, nil
}

// FeeBreakdown is the itemized result of a single fee computation.
type FeeBreakdown struct {
	BaseFee     float64 `json:"baseFee"`
	DistanceFee float64 `json:"distanceFee"`
	WeightFee   float64 `json:"weightFee"`
	WeatherFee  float64 `json:"weatherFee"`
	// TotalFee is the exact sum of the four components.
	TotalFee float64 `json:"totalFee"`
}

// Compute prices a delivery against an explicit parameter snapshot.
//
// Distance and weight are charged only when strictly above their free
// thresholds, and those two surcharges are rounded half away from zero.
// Base and weather fees are taken verbatim. Compute has no side effects.
// A surcharge or total too large to represent is reported as a ValidationError.
func Compute(distance, weight float64, weather WeatherCondition, params DeliveryFeeParameters) (FeeBreakdown, error) {
	if err := validateAmount(FieldDistance, distance); err != nil {
		return FeeBreakdown{}, err
	}
	if err := validateAmount(FieldWeight, weight); err != nil {
		return FeeBreakdown{}, err
	}
	if !weather.IsValid() {
		return FeeBreakdown{}, newValidationError(FieldWeather, "must be one of normal, rainy, extreme")
	}
	if err := params.Validate(); err != nil {
		return FeeBreakdown{}, err
	}

	b := FeeBreakdown{
		BaseFee:     params.BaseRate,
		DistanceFee: surcharge(distance, params.FreeDistanceThreshold, params.DistanceRatePerKm),
		WeightFee:   surcharge(weight, params.FreeWeightThreshold, params.WeightRatePerKg),
	}
	if !isFinite(b.DistanceFee) {
		return FeeBreakdown{}, newValidationError(FieldDistance, overflowReason)
	}
	if !isFinite(b.WeightFee) {
		return FeeBreakdown{}, newValidationError(FieldWeight, overflowReason)
	}

	switch weather {
	case WeatherRainy:
		b.WeatherFee = params.RainyWeatherFee
	case WeatherExtreme:
		b.WeatherFee = params.ExtremeWeatherFee
	}

	b.TotalFee = b.BaseFee + b.DistanceFee + b.WeightFee + b.WeatherFee
	if !isFinite(b.TotalFee) {
		return FeeBreakdown{}, newValidationError(FieldTotalFee, overflowReason)
	}
	return b, nil
}

// surcharge charges rate per unit above a free threshold. A value equal to the
// threshold is free.
func surcharge(value, threshold, rate float64) float64 {
	if value <= threshold {
		return 0
	}
	// math.Round rounds half away from zero, not to even.
	return math.Round((value - threshold) * rate)
}
