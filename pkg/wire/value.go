package wire

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// NormalizeValue maps a freshly decoded value to the canonical Go
// type for the given format. Values that contradict their format are
// returned verbatim. Integer formats normalize to int64, with uint64
// as the fallback for values above MaxInt64. The uint64 case covers
// CBOR snapshot decoding, which yields uint64 for non-negative
// integers.
func NormalizeValue(format Format, v any) any {
	switch n := v.(type) {
	case json.Number:
		return normalizeNumber(format, n)
	case uint64:
		if format.IsInteger() && n <= math.MaxInt64 {
			return int64(n)
		}
		return n
	default:
		return v
	}
}

func normalizeNumber(format Format, num json.Number) any {
	switch {
	case format.IsInteger():
		if i, err := num.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
			return u
		}
		return num
	case format == FormatFloat:
		if f, err := num.Float64(); err == nil {
			return f
		}
		return num
	default:
		// A number where the format says bool/string/blob. Keep the
		// literal so re-encoding reproduces the document unchanged.
		return num
	}
}

// CoerceValue converts a caller-supplied value to the canonical Go
// type for the given format. Unlike NormalizeValue it rejects values
// that do not fit, reporting ErrInvalidValue. A nil value clears the
// characteristic and is always accepted. Formats outside the defined
// set accept any value.
func CoerceValue(format Format, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if num, ok := v.(json.Number); ok {
		return coerceNumber(format, num)
	}

	switch {
	case format == FormatBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case format == FormatString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case format == FormatTLV8 || format == FormatData:
		switch raw := v.(type) {
		case string:
			return raw, nil
		case []byte:
			return base64.StdEncoding.EncodeToString(raw), nil
		}
	case format == FormatFloat:
		if f, ok := floatValue(v); ok {
			return f, nil
		}
	case format.IsInteger():
		if n, ok := integerValue(v); ok {
			return n, nil
		}
	default:
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T does not fit format %q", ErrInvalidValue, v, format)
}

func coerceNumber(format Format, num json.Number) (any, error) {
	switch {
	case format.IsInteger():
		if i, err := num.Int64(); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
			return u, nil
		}
	case format == FormatFloat:
		if f, err := num.Float64(); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q does not fit format %q", ErrInvalidValue, num.String(), format)
}

// integerValue converts any Go numeric kind to int64, or uint64 when
// the value exceeds MaxInt64. Floats are accepted only when integral.
func integerValue(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uint64ToInteger(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uint64ToInteger(n), true
	case float32:
		return floatToInteger(float64(n))
	case float64:
		return floatToInteger(n)
	default:
		return nil, false
	}
}

func uint64ToInteger(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

func floatToInteger(f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
