package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"algoconfig/internal/models"
)

// Canonical allow-lists. Historically the backend and frontend carried
// two overlapping instrument lists (EURUSD vs CRUDE); the canonical set
// is the union so no previously stored record fails validation today.
var (
	Instruments = []string{"NIFTY", "BANKNIFTY", "SP500", "NASDAQ", "EURUSD", "CRUDE"}
	Timeframes  = []string{"1m", "5m", "15m", "1h"}
)

const (
	MinNameLen = 2
	MaxNameLen = 60

	// MaxTradesPerDayLimit bounds maxTradesPerDay so the validated
	// float always survives conversion to int exactly.
	MaxTradesPerDayLimit = math.MaxInt32
)

// Errors maps a field name to a human-readable message. An empty map
// means the payload is valid.
type Errors map[string]string

// Validate checks a candidate payload field by field. It is pure: no
// side effects, errors are data, never returned as an error value.
// Thresholds only need to be finite numbers; an exit threshold below
// zero is a legitimate strategy parameter.
func Validate(p models.ConfigPayload) Errors {
	errs := Errors{}

	// Length limits count characters, not bytes, so multi-byte names
	// get the same bounds the form shows the user.
	name := strings.TrimSpace(p.Name)
	if utf8.RuneCountInString(name) < MinNameLen {
		errs["name"] = "Name must be at least 2 characters."
	} else if utf8.RuneCountInString(name) > MaxNameLen {
		errs["name"] = "Name must not exceed 60 characters."
	}

	if !contains(Instruments, p.Instrument) {
		errs["instrument"] = "Instrument must be one of: " + strings.Join(Instruments, ", ") + "."
	}

	if !contains(Timeframes, p.Timeframe) {
		errs["timeframe"] = "Timeframe must be one of: " + strings.Join(Timeframes, ", ") + "."
	}

	if !isFinite(p.EntryThreshold) {
		errs["entryThreshold"] = "Entry threshold must be a valid number."
	}

	if !isFinite(p.ExitThreshold) {
		errs["exitThreshold"] = "Exit threshold must be a valid number."
	}

	if !isFinite(p.MaxLossPercent) || *p.MaxLossPercent <= 0 || *p.MaxLossPercent > 100 {
		errs["maxLossPercent"] = "Max loss % must be between 0 and 100."
	}

	// The upper bound keeps the value safely convertible to int; a
	// float beyond it would wrap on conversion and store garbage.
	if !isFinite(p.MaxTradesPerDay) || *p.MaxTradesPerDay < 1 ||
		*p.MaxTradesPerDay > MaxTradesPerDayLimit ||
		*p.MaxTradesPerDay != math.Trunc(*p.MaxTradesPerDay) {
		errs["maxTradesPerDay"] = "Max trades per day must be a positive whole number."
	}

	return errs
}

func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
