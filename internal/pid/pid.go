package pid

import "sync"

// Gains holds the three tuning constants of a Controller.
type Gains struct {
	Kp float64 `json:"kp"`
	Ki float64 `json:"ki"`
	Kd float64 `json:"kd"`
}

var (
	// DefaultGains are used when an axis does not specify its own tuning.
	DefaultGains = Gains{
		Kp: 0.001,
		Ki: 0.0,
		Kd: 0.0,
	}
)

// Controller is a sample-based discrete PID compensator. It is driven at
// the fixed control loop rate, so the loop period is absorbed into the
// integral and derivative gains.
type Controller struct {
	mu sync.Mutex

	gains Gains

	// Minimum output value
	outMin float64
	// Maximum output value
	outMax float64

	// accumulated error, i.e. integral error
	integral float64
	// error of the previous step, used for the derivative term
	lastError float64
	// whether at least one step has been taken since the last reset
	primed bool
	// last output value, used for anti-windup
	lastOutput float64
}

// NewController creates a Controller with the given gains,
// clamping its output to [outMin, outMax].
func NewController(gains Gains, outMin float64, outMax float64) *Controller {
	return &Controller{
		gains:  gains,
		outMin: outMin,
		outMax: outMax,
	}
}

// Step advances the compensator by one control cycle and
// returns the effort for the given error.
func (c *Controller) Step(err float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.primed {
		c.primed = true
		c.lastError = err
		c.integral = 0

		output := c.clamp(c.gains.Kp * err)
		c.lastOutput = output
		return output
	}

	proportionalTerm := c.gains.Kp * err

	// don't integrate if the output is already saturated
	// and the error is trying to push it further
	integrate := true
	if c.lastOutput >= c.outMax && err > 0 {
		integrate = false
	}
	if c.lastOutput <= c.outMin && err < 0 {
		integrate = false
	}
	if integrate {
		c.integral = c.integral + err
	}
	integralTerm := c.gains.Ki * c.integral

	derivativeTerm := c.gains.Kd * (err - c.lastError)

	output := c.clamp(proportionalTerm + integralTerm + derivativeTerm)

	c.lastError = err
	c.lastOutput = output

	return output
}

// Reset clears the integral and derivative state, so a following Step
// behaves like the very first one after construction.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.integral = 0
	c.lastError = 0
	c.lastOutput = 0
	c.primed = false
}

func (c *Controller) SetGains(gains Gains) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gains = gains
}

func (c *Controller) Gains() Gains {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gains
}

func (c *Controller) SetKp(kp float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gains.Kp = kp
}

func (c *Controller) SetKi(ki float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gains.Ki = ki
}

func (c *Controller) SetKd(kd float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gains.Kd = kd
}

func (c *Controller) Kp() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gains.Kp
}

func (c *Controller) Ki() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gains.Ki
}

func (c *Controller) Kd() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gains.Kd
}

func (c *Controller) clamp(value float64) float64 {
	if value > c.outMax {
		return c.outMax
	}
	if value < c.outMin {
		return c.outMin
	}
	return value
}
