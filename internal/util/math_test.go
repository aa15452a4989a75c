package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCoerceInsideRange(t *testing.T) {
	// GIVEN
	value := 5.0

	// WHEN
	result := Coerce(value, 0, 10)

	// THEN
	assert.Equal(t, value, result)
}

func TestCoerceAboveRange(t *testing.T) {
	// GIVEN
	value := 15.0

	// WHEN
	result := Coerce(value, 0, 10)

	// THEN
	assert.Equal(t, 10.0, result)
}

func TestCoerceBelowRange(t *testing.T) {
	// GIVEN
	value := -3.0

	// WHEN
	result := Coerce(value, 0, 10)

	// THEN
	assert.Equal(t, 0.0, result)
}

func TestRatio(t *testing.T) {
	// GIVEN
	a := 0.0
	b := 100.0
	c := 50.0

	expected := 0.5

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestRatioNegativeRange(t *testing.T) {
	// GIVEN
	a := -10.0
	b := 10.0
	c := 5.0

	expected := 0.75

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestUpdateSimpleMovingAvg(t *testing.T) {
	// GIVEN
	oldAvg := 10.0
	n := 10
	newValue := 20.0

	// WHEN
	result := UpdateSimpleMovingAvg(oldAvg, n, newValue)

	// THEN
	assert.Equal(t, 11.0, result)
}
