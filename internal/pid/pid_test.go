package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewController(t *testing.T) {
	// GIVEN
	gains := Gains{Kp: 1.0, Ki: 2.0, Kd: 3.0}

	// WHEN
	controller := NewController(gains, -10, 10)

	// THEN
	assert.Equal(t, gains, controller.Gains())
}

func TestController_P(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Kp: 0.5}, -10, 10)

	// WHEN
	output := controller.Step(4.0)
	// THEN
	assert.Equal(t, 2.0, output)

	// WHEN
	output = controller.Step(4.0)
	// THEN
	assert.Equal(t, 2.0, output)
}

func TestController_I(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Ki: 0.1}, -10, 10)

	// WHEN
	output := controller.Step(5.0)
	// THEN
	// the first step only applies the proportional term
	assert.Equal(t, 0.0, output)

	// WHEN
	output = controller.Step(5.0)
	// THEN
	assert.InDelta(t, 0.5, output, 0.0001)

	// WHEN
	output = controller.Step(5.0)
	// THEN
	assert.InDelta(t, 1.0, output, 0.0001)
}

func TestController_D(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Kd: 0.1}, -10, 10)

	// WHEN
	output := controller.Step(5.0)
	// THEN
	assert.Equal(t, 0.0, output)

	// WHEN
	output = controller.Step(8.0)
	// THEN
	assert.InDelta(t, 0.3, output, 0.0001)
}

func TestController_OutputClamped(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Kp: 100.0}, -10, 10)

	// WHEN
	output := controller.Step(5.0)
	// THEN
	assert.Equal(t, 10.0, output)

	// WHEN
	output = controller.Step(-5.0)
	// THEN
	assert.Equal(t, -10.0, output)
}

func TestController_AntiWindup(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Kp: 10.0, Ki: 1.0}, -10, 10)

	// saturate the output for a while
	for idx := 0; idx < 100; idx++ {
		output := controller.Step(100.0)
		assert.Equal(t, 10.0, output)
	}

	// WHEN
	// error flips sign, the output must leave saturation
	// without first unwinding a huge integral
	output := controller.Step(-100.0)

	// THEN
	assert.Equal(t, -10.0, output)
}

func TestController_Reset(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{Kp: 1.0, Ki: 1.0}, -100, 100)
	controller.Step(5.0)
	controller.Step(5.0)
	controller.Step(5.0)

	// WHEN
	controller.Reset()
	output := controller.Step(5.0)

	// THEN
	// behaves like the very first step again
	assert.Equal(t, 5.0, output)
}

func TestController_GainAccessors(t *testing.T) {
	// GIVEN
	controller := NewController(Gains{}, -10, 10)

	// WHEN
	controller.SetKp(1.0)
	controller.SetKi(2.0)
	controller.SetKd(3.0)

	// THEN
	assert.Equal(t, 1.0, controller.Kp())
	assert.Equal(t, 2.0, controller.Ki())
	assert.Equal(t, 3.0, controller.Kd())
	assert.Equal(t, Gains{Kp: 1.0, Ki: 2.0, Kd: 3.0}, controller.Gains())
}

func TestController_Convergence(t *testing.T) {
	// GIVEN
	// a first order plant driven by the controller output
	controller := NewController(Gains{Kp: 0.4, Ki: 0.05}, -100, 100)
	target := 50.0
	position := 0.0

	// WHEN
	for idx := 0; idx < 1000; idx++ {
		effort := controller.Step(target - position)
		position += effort * 0.5
	}

	// THEN
	assert.InDelta(t, target, position, 0.1)
}
