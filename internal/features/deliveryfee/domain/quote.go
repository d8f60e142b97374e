package domain

// FieldParametersVersion names the snapshot version a checkout session quotes against.
const FieldParametersVersion = "parametersVersion"

// QuoteRequest describes a delivery to be priced.
// ParametersVersion selects a snapshot the store published earlier in the
// checkout session; when empty the current snapshot is used.
type QuoteRequest struct {
	Distance          float64
	Weight            float64
	Weather           WeatherCondition
	ParametersVersion string
}

// Quote pairs a breakdown with the snapshot that produced it, so an order can
// store both and be re-priced identically later.
type Quote struct {
	Breakdown         FeeBreakdown          `json:"breakdown"`
	Parameters        DeliveryFeeParameters `json:"parameters"`
	ParametersVersion string                `json:"parametersVersion"`
}
