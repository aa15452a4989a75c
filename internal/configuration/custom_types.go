package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// Optional is a generic container for optional configuration values.
type Optional[T any] struct {
	// Value holds the actual as unmarshalled.
	Value T
	// Present indicates if the value was present in the configuration.
	Present bool
}

// DefaultTrueBool is a boolean type that defaults to true if not present.
type DefaultTrueBool struct {
	Optional[bool]
}

// Get returns the boolean value, defaulting to true if not present.
func (b *DefaultTrueBool) Get() bool {
	if !b.Present {
		return true
	}
	return b.Value
}

// OutputRange is the saturation bound pair of an axis output.
type OutputRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// outputRangeHookFunc returns a mapstructure decode hook that accepts an
// output range written as a two-element array ([-10, 10]) in addition to
// the {min: ..., max: ...} map form.
func outputRangeHookFunc() mapstructure.DecodeHookFuncType {
	rangeType := reflect.TypeOf(OutputRange{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != rangeType {
			return data, nil
		}

		values, ok := data.([]interface{})
		if !ok {
			return data, nil
		}
		if len(values) != 2 {
			return nil, fmt.Errorf("outputRange: expected two elements, got %d", len(values))
		}

		min, err := anyToFloat(values[0])
		if err != nil {
			return nil, fmt.Errorf("outputRange: %w", err)
		}
		max, err := anyToFloat(values[1])
		if err != nil {
			return nil, fmt.Errorf("outputRange: %w", err)
		}

		return OutputRange{Min: min, Max: max}, nil
	}
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as float: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

// DefaultTrueBoolHookFunc returns a mapstructure decode hook function for DefaultTrueBool.
func DefaultTrueBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		// Only target our specific named type
		if t != reflect.TypeOf(DefaultTrueBool{}) {
			return data, nil
		}

		var val bool
		switch v := data.(type) {
		case bool:
			val = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return data, nil
			}
			val = parsed
		default:
			return data, nil
		}

		// Return the specific type with the inner Optional initialized
		return DefaultTrueBool{
			Optional: Optional[bool]{
				Value:   val,
				Present: true,
			},
		}, nil
	}
}
