package domain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// JSON field names, shared by validation errors and the HTTP layer.
const (
	FieldBaseRate              = "baseRate"
	FieldDistanceRatePerKm     = "distanceRatePerKm"
	FieldFreeDistanceThreshold = "freeDistanceThreshold"
	FieldWeightRatePerKg       = "weightRatePerKg"
	FieldFreeWeightThreshold   = "freeWeightThreshold"
	FieldRainyWeatherFee       = "rainyWeatherFee"
	FieldExtremeWeatherFee     = "extremeWeatherFee"
)

// DeliveryFeeParameters is an immutable snapshot of the tunable fee settings.
// It is a plain value: copies never share state.
type DeliveryFeeParameters struct {
	// BaseRate is the flat fee included in every delivery.
	BaseRate float64 `json:"baseRate"`
	// DistanceRatePerKm is charged per km beyond FreeDistanceThreshold.
	DistanceRatePerKm float64 `json:"distanceRatePerKm"`
	// FreeDistanceThreshold is the distance (km) covered by BaseRate.
	FreeDistanceThreshold float64 `json:"freeDistanceThreshold"`
	// WeightRatePerKg is charged per kg beyond FreeWeightThreshold.
	WeightRatePerKg float64 `json:"weightRatePerKg"`
	// FreeWeightThreshold is the weight (kg) covered by BaseRate.
	FreeWeightThreshold float64 `json:"freeWeightThreshold"`
	// RainyWeatherFee is the flat surcharge for rainy weather.
	RainyWeatherFee float64 `json:"rainyWeatherFee"`
	// ExtremeWeatherFee is the flat surcharge for extreme weather.
	ExtremeWeatherFee float64 `json:"extremeWeatherFee"`
}

// DefaultParameters returns the factory settings used at startup and on reset.
func DefaultParameters() DeliveryFeeParameters {
	return DeliveryFeeParameters{
		BaseRate:              100,
		DistanceRatePerKm:     10,
		FreeDistanceThreshold: 3,
		WeightRatePerKg:       20,
		FreeWeightThreshold:   5,
		RainyWeatherFee:       30,
		ExtremeWeatherFee:     50,
	}
}

// Validate checks every field in declaration order and reports the first violation.
func (p DeliveryFeeParameters) Validate() error {
	for _, f := range p.fields() {
		if err := validateAmount(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges patch onto p and returns the resulting snapshot.
// p is never modified; on error the returned snapshot is the zero value.
func (p DeliveryFeeParameters) Apply(patch ParameterPatch) (DeliveryFeeParameters, error) {
	next := p
	targets := next.fields()
	for i, v := range patch.fields() {
		if v == nil {
			continue
		}
		if err := validateAmount(targets[i].name, *v); err != nil {
			return DeliveryFeeParameters{}, err
		}
		*targets[i].value = *v
	}
	return next, nil
}

// Version identifies p by content. Equal snapshots always share a version,
// including across restarts.
func (p DeliveryFeeParameters) Version() string {
	d := xxhash.New()
	var buf [8]byte
	for _, f := range p.fields() {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(*f.value))
		_, _ = d.Write(buf[:])
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// VersionedParameters is a snapshot together with its version. Checkout
// sessions keep the version and quote against it later.
type VersionedParameters struct {
	DeliveryFeeParameters
	Version string `json:"version"`
}

// Versioned pairs p with its version.
func (p DeliveryFeeParameters) Versioned() VersionedParameters {
	return VersionedParameters{DeliveryFeeParameters: p, Version: p.Version()}
}

type namedField struct {
	name  string
	value *float64
}

func (p *DeliveryFeeParameters) fields() []namedField {
	return []namedField{
		{FieldBaseRate, &p.BaseRate},
		{FieldDistanceRatePerKm, &p.DistanceRatePerKm},
		{FieldFreeDistanceThreshold, &p.FreeDistanceThreshold},
		{FieldWeightRatePerKg, &p.WeightRatePerKg},
		{FieldFreeWeightThreshold, &p.FreeWeightThreshold},
		{FieldRainyWeatherFee, &p.RainyWeatherFee},
		{FieldExtremeWeatherFee, &p.ExtremeWeatherFee},
	}
}

// ParameterPatch carries a partial update. Nil fields keep their current value.
type ParameterPatch struct {
	BaseRate              *float64 `json:"baseRate,omitempty"`
	DistanceRatePerKm     *float64 `json:"distanceRatePerKm,omitempty"`
	FreeDistanceThreshold *float64 `json:"freeDistanceThreshold,omitempty"`
	WeightRatePerKg       *float64 `json:"weightRatePerKg,omitempty"`
	FreeWeightThreshold   *float64 `json:"freeWeightThreshold,omitempty"`
	RainyWeatherFee       *float64 `json:"rainyWeatherFee,omitempty"`
	ExtremeWeatherFee     *float64 `json:"extremeWeatherFee,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (pp ParameterPatch) IsEmpty() bool {
	for _, v := range pp.fields() {
		if v != nil {
			return false
		}
	}
	return true
}

// Same order as DeliveryFeeParameters.fields.
func (pp ParameterPatch) fields() []*float64 {
	return []*float64{
		pp.BaseRate,
		pp.DistanceRatePerKm,
		pp.FreeDistanceThreshold,
		pp.WeightRatePerKg,
		pp.FreeWeightThreshold,
		pp.RainyWeatherFee,
		pp.ExtremeWeatherFee,
	}
}

func validateAmount(field string, v float64) error {
	if !isFinite(v) {
		return newValidationError(field, "must be a finite number")
	}
	if v < 0 {
		return newValidationError(field, "must not be negative")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
