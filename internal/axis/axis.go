package axis

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/encoder"
	"github.com/mfrox/mcb2go/internal/pid"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/mfrox/mcb2go/internal/util"
)

const (
	// SafeCode is the mid-scale output code, i.e. zero effort on a
	// symmetric output range. Step yields it whenever a meaningful
	// code cannot be computed.
	SafeCode uint16 = 0x8000

	// number of encoder initialization attempts before giving up
	maxInitAttempts = 5
	// number of count reset attempts before giving up
	maxResetAttempts = 5
)

var ErrNotConfigured = errors.New("axis is not configured")

// Compensator converts a position error into a control effort.
type Compensator interface {
	Step(err float64) float64
	Reset()
	SetGains(gains pid.Gains)
	Gains() pid.Gains
}

// Axis is the control unit of one physical motor axis. It owns the
// position sensor and the compensator of that axis exclusively and
// turns a desired encoder count into a 16-bit DAC code, one control
// cycle at a time.
type Axis struct {
	mu sync.Mutex

	config configuration.AxisConfig
	sensor encoder.PositionSensor
	pid    Compensator

	// true only after the position sensor reported successful
	// initialization, gates Step
	configured bool

	countDesired int32
	countLast    int32
	countError   int32

	// last polarity-applied control effort in physical units
	effort float64

	polarity bool
}

// NewAxis creates the control unit for one axis. The output range of
// the config must be a non-empty interval.
func NewAxis(config configuration.AxisConfig, sensor encoder.PositionSensor, compensator Compensator) (*Axis, error) {
	if config.OutputRange.Min >= config.OutputRange.Max {
		return nil, fmt.Errorf("axis %s: invalid output range [%f, %f]", config.ID, config.OutputRange.Min, config.OutputRange.Max)
	}

	return &Axis{
		config:   config,
		sensor:   sensor,
		pid:      compensator,
		polarity: config.Polarity.Get(),
	}, nil
}

func (a *Axis) GetId() string {
	return a.config.ID
}

func (a *Axis) GetConfig() configuration.AxisConfig {
	return a.config
}

// Init brings the position sensor online, retrying up to
// maxInitAttempts times and stopping on the first success. Gains, if
// given, are applied to the compensator before the first attempt,
// otherwise its current tuning stands. Calling Init on an already
// configured axis repeats the whole procedure.
func (a *Axis) Init(gains ...pid.Gains) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(gains) > 0 {
		a.pid.SetGains(gains[0])
	}

	a.configured = false

	var lastErr error
	for attempt := 1; attempt <= maxInitAttempts; attempt++ {
		err := a.sensor.Init()
		if err != nil {
			lastErr = err
			ui.Warning("Axis %s: encoder initialization attempt %d/%d failed: %v", a.config.ID, attempt, maxInitAttempts, err)
			continue
		}
		a.configured = true
		break
	}

	if !a.configured {
		return fmt.Errorf("axis %s: encoder initialization failed after %d attempts: %w", a.config.ID, maxInitAttempts, lastErr)
	}
	return nil
}

// Step executes exactly one control cycle: read the position, feed
// the error through the compensator, apply polarity, saturate and
// encode the result. The returned code is always well-defined; when
// the axis is not configured or the sensor read fails, it is SafeCode
// and the error says why.
func (a *Axis) Step() (uint16, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	code := SafeCode

	if !a.configured {
		return code, ErrNotConfigured
	}

	count, err := a.sensor.ReadPosition()
	if err != nil {
		return code, fmt.Errorf("axis %s: %w", a.config.ID, err)
	}
	a.countLast = count
	a.countError = a.countDesired - a.countLast

	polarity := 1.0
	if !a.polarity {
		polarity = -1.0
	}
	a.effort = polarity * a.pid.Step(float64(a.countError))

	code = a.EffortToCode(a.effort)
	return code, nil
}

// EffortToCode saturates the given effort to the output range of the
// axis and encodes it linearly into a 16-bit DAC code, where 0 maps
// to the lower bound and 65535 to the upper bound.
func (a *Axis) EffortToCode(effort float64) uint16 {
	low := a.config.OutputRange.Min
	high := a.config.OutputRange.Max
	if high <= low {
		// degenerate range, minimum code
		return 0
	}

	clamped := util.Coerce(effort, low, high)
	return uint16(math.Round(65535.0 * util.Ratio(clamped, low, high)))
}

// ResetCount zeroes the position sensor counter, retrying up to
// maxResetAttempts times and confirming each attempt by reading the
// counter back. On a confirmed zero the compensator state is cleared
// and the desired count is zeroed in the same critical section, so no
// Step can pair the fresh position with a stale setpoint. When all
// attempts fail, setpoint and compensator state stay untouched.
func (a *Axis) ResetCount() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= maxResetAttempts; attempt++ {
		if err := a.sensor.ResetPosition(); err != nil {
			lastErr = err
			continue
		}

		count, err := a.sensor.ReadPosition()
		if err != nil {
			lastErr = err
			continue
		}
		// record the read-back before the interlock below fires
		a.countLast = count

		if count == 0 {
			// prevent sudden movement upon the next control cycle
			a.pid.Reset()
			a.countDesired = 0
			return nil
		}
		lastErr = fmt.Errorf("count read back as %d", count)
	}

	return fmt.Errorf("axis %s: count reset failed after %d attempts: %w", a.config.ID, maxResetAttempts, lastErr)
}

func (a *Axis) IsConfigured() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.configured
}

func (a *Axis) SetCountDesired(count int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.countDesired = count
}

func (a *Axis) GetCountDesired() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.countDesired
}

func (a *Axis) GetCountLast() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.countLast
}

func (a *Axis) GetCountError() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.countError
}

func (a *Axis) GetEffort() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.effort
}

func (a *Axis) SetPolarity(polarity bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.polarity = polarity
}

func (a *Axis) GetPolarity() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.polarity
}

func (a *Axis) SetGains(gains pid.Gains) {
	a.pid.SetGains(gains)
}

func (a *Axis) GetGains() pid.Gains {
	return a.pid.Gains()
}

func (a *Axis) SetKp(kp float64) {
	gains := a.pid.Gains()
	gains.Kp = kp
	a.pid.SetGains(gains)
}

func (a *Axis) SetKi(ki float64) {
	gains := a.pid.Gains()
	gains.Ki = ki
	a.pid.SetGains(gains)
}

func (a *Axis) SetKd(kd float64) {
	gains := a.pid.Gains()
	gains.Kd = kd
	a.pid.SetGains(gains)
}

func (a *Axis) GetKp() float64 {
	return a.pid.Gains().Kp
}

func (a *Axis) GetKi() float64 {
	return a.pid.Gains().Ki
}

func (a *Axis) GetKd() float64 {
	return a.pid.Gains().Kd
}

// ResetPid clears the compensator state without touching the counter
// or the setpoint.
func (a *Axis) ResetPid() {
	a.pid.Reset()
}
