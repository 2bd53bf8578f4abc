package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/samplerate/schema"
)

// timestampLayouts are tried in order for textual timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006/01/02 15:04:05.999999999",
	"1/2/2006 15:04:05.999999999",
	"2006-01-02",
	timeOfDayLayout,
}

// timeOfDayLayout carries no date, so it parses to year 0.
const timeOfDayLayout = "15:04:05.999999999"

var (
	errEmptyTimestamp  = errors.New("empty value")
	errUnknownLayout   = errors.New("no known date/time layout matches")
	errNonFiniteEpoch  = errors.New("epoch value is not finite")
	errEpochOutOfRange = errors.New("epoch value out of range")
	errMixedTextKinds  = errors.New("time of day mixed with dated timestamps")
)

// autoUnitLadder lists the units auto mode escalates through when seconds would overflow.
var autoUnitLadder = []schema.EpochUnit{schema.SecondsUnit, schema.MillisUnit, schema.MicrosUnit, schema.NanosUnit}

// unitScale maps an explicit epoch unit to nanoseconds per unit.
var unitScale = map[schema.EpochUnit]float64{
	schema.SecondsUnit: 1e9,
	schema.MillisUnit:  1e6,
	schema.MicrosUnit:  1e3,
	schema.NanosUnit:   1,
}

// ParseTimestamps converts raw values into points in time, preserving order.
//
// The kind of the series is decided by its first value: numeric series are epoch offsets in
// the given unit, everything else is parsed against timestampLayouts. A text series must not
// mix time-of-day values with dated ones.
//
// With schema.AutoUnit a numeric series whose largest magnitude would overflow as seconds takes
// the first unit of s, ms, us, ns that fits. Otherwise it is read as nanoseconds when its
// largest adjacent step exceeds schema.AutoNanosCutoff, and as seconds when it does not.
//
// The first value that cannot be converted yields a *schema.ParseError.
func ParseTimestamps(values []string, unit schema.EpochUnit) ([]time.Time, error) {
	if unit == "" {
		unit = schema.AutoUnit
	}
	if _, ok := schema.ValidEpochUnits[unit]; !ok {
		return nil, fmt.Errorf("invalid epoch unit '%s'. must be auto, s, ms, us, ns", unit)
	}
	if len(values) == 0 {
		return []time.Time{}, nil
	}
	if _, err := parseEpochValue(values[0]); err == nil {
		return parseNumericSeries(values, unit)
	}
	return parseTextSeries(values)
}

// parseTextSeries parses every value against the known layouts.
func parseTextSeries(values []string) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	var dated bool
	for i, raw := range values {
		t, layout, err := parseTextValue(raw)
		if err != nil {
			return nil, &schema.ParseError{Index: i, Value: raw, Err: err}
		}
		isDated := layout != timeOfDayLayout
		if i == 0 {
			dated = isDated
		} else if isDated != dated {
			return nil, &schema.ParseError{Index: i, Value: raw, Err: errMixedTextKinds}
		}
		out[i] = t
	}
	return out, nil
}

// parseTextValue tries each layout in order and returns the first match with its layout.
func parseTextValue(raw string) (time.Time, string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, "", errEmptyTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", errUnknownLayout
}

// parseNumericSeries parses epoch offsets and resolves the unit for the whole series.
func parseNumericSeries(values []string, unit schema.EpochUnit) ([]time.Time, error) {
	nums := make([]float64, len(values))
	for i, raw := range values {
		v, err := parseEpochValue(raw)
		if err != nil {
			return nil, &schema.ParseError{Index: i, Value: raw, Err: err}
		}
		nums[i] = v
	}

	if unit == schema.AutoUnit {
		unit = resolveAutoUnit(nums)
	}
	scale := unitScale[unit]

	out := make([]time.Time, len(values))
	for i, raw := range values {
		t, err := epochToTime(strings.TrimSpace(raw), nums[i], scale)
		if err != nil {
			return nil, &schema.ParseError{Index: i, Value: raw, Err: err}
		}
		out[i] = t
	}
	return out, nil
}

// parseEpochValue parses a single finite numeric value.
func parseEpochValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errEmptyTimestamp
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFiniteEpoch
	}
	return v, nil
}

// resolveAutoUnit picks the unit of a numeric series, by magnitude when seconds
// would overflow and by the largest adjacent step otherwise.
func resolveAutoUnit(nums []float64) schema.EpochUnit {
	var maxAbs float64
	for _, v := range nums {
		maxAbs = max(maxAbs, math.Abs(v))
	}
	if !fitsUnit(maxAbs, schema.SecondsUnit) {
		for _, unit := range autoUnitLadder[1:] {
			if fitsUnit(maxAbs, unit) {
				return unit
			}
		}
		return schema.NanosUnit
	}

	if len(nums) < 2 {
		return schema.SecondsUnit
	}
	maxStep := math.Inf(-1)
	for i := 1; i < len(nums); i++ {
		maxStep = max(maxStep, nums[i]-nums[i-1])
	}
	if maxStep > schema.AutoNanosCutoff {
		return schema.NanosUnit
	}
	return schema.SecondsUnit
}

// fitsUnit reports whether an offset of magnitude abs stays within int64 nanoseconds.
func fitsUnit(abs float64, unit schema.EpochUnit) bool {
	return abs*unitScale[unit] < math.MaxInt64
}

// epochToTime converts an offset to UTC time. Integer inputs are scaled exactly.
func epochToTime(s string, v float64, scale float64) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		step := int64(scale)
		if n > math.MaxInt64/step || n < math.MinInt64/step {
			return time.Time{}, errEpochOutOfRange
		}
		return time.Unix(0, n*step).UTC(), nil
	}
	ns := v * scale
	if ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return time.Time{}, errEpochOutOfRange
	}
	return time.Unix(0, int64(math.Round(ns))).UTC(), nil
}
