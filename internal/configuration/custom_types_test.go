package configuration

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
)

type outputRangeHost struct {
	OutputRange OutputRange `mapstructure:"outputRange"`
}

func decodeOutputRange(t *testing.T, input map[string]interface{}) outputRangeHost {
	var result outputRangeHost
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: outputRangeHookFunc(),
		Result:     &result,
	})
	assert.NoError(t, err)
	assert.NoError(t, decoder.Decode(input))
	return result
}

func TestOutputRangeMapForm(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"outputRange": map[string]interface{}{
			"min": -10.0,
			"max": 10.0,
		},
	}

	// WHEN
	result := decodeOutputRange(t, input)

	// THEN
	assert.Equal(t, OutputRange{Min: -10, Max: 10}, result.OutputRange)
}

func TestOutputRangeArrayForm(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"outputRange": []interface{}{-10, 10},
	}

	// WHEN
	result := decodeOutputRange(t, input)

	// THEN
	assert.Equal(t, OutputRange{Min: -10, Max: 10}, result.OutputRange)
}

func TestOutputRangeArrayFormWrongLength(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"outputRange": []interface{}{-10, 0, 10},
	}
	var result outputRangeHost
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: outputRangeHookFunc(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(input)

	// THEN
	assert.Error(t, err)
}

func TestDefaultTrueBoolAbsent(t *testing.T) {
	// GIVEN
	var value DefaultTrueBool

	// THEN
	assert.True(t, value.Get())
}

func TestDefaultTrueBoolExplicitFalse(t *testing.T) {
	// GIVEN
	type host struct {
		Polarity DefaultTrueBool `mapstructure:"polarity"`
	}
	input := map[string]interface{}{
		"polarity": false,
	}

	var result host
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DefaultTrueBoolHookFunc(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(input)

	// THEN
	assert.NoError(t, err)
	assert.False(t, result.Polarity.Get())
	assert.True(t, result.Polarity.Present)
}
