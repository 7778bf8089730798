package models

import "time"

// AlgoConfig is a named set of trading-algorithm execution parameters.
// The id and both timestamps are assigned by the service and never
// accepted from a client payload.
type AlgoConfig struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Instrument      string    `json:"instrument"`
	Timeframe       string    `json:"timeframe"`
	EntryThreshold  float64   `json:"entryThreshold"`
	ExitThreshold   float64   `json:"exitThreshold"`
	MaxLossPercent  float64   `json:"maxLossPercent"`
	MaxTradesPerDay int       `json:"maxTradesPerDay"`
	Enabled         bool      `json:"enabled"`
	StopLossEnabled bool      `json:"stopLossEnabled"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ConfigPayload carries candidate field values for create and update
// requests. Numeric and boolean fields are pointers so validation can
// tell an absent field apart from a zero value. MaxTradesPerDay stays
// a float until validation so a fractional value is reported as a
// field error instead of failing the JSON bind.
type ConfigPayload struct {
	Name            string   `json:"name"`
	Instrument      string   `json:"instrument"`
	Timeframe       string   `json:"timeframe"`
	EntryThreshold  *float64 `json:"entryThreshold"`
	ExitThreshold   *float64 `json:"exitThreshold"`
	MaxLossPercent  *float64 `json:"maxLossPercent"`
	MaxTradesPerDay *float64 `json:"maxTradesPerDay"`
	Enabled         *bool    `json:"enabled"`
	StopLossEnabled *bool    `json:"stopLossEnabled"`
	Notes           string   `json:"notes"`
}
