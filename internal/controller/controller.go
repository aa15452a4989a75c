package controller

import (
	"context"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/mfrox/mcb2go/internal/axis"
	"github.com/mfrox/mcb2go/internal/dac"
	"github.com/mfrox/mcb2go/internal/persistence"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/mfrox/mcb2go/internal/util"
	"github.com/oklog/run"
)

type AxisController interface {
	GetId() string
	Run(ctx context.Context) error
	UpdateAxis() error

	// GetVelocity returns the estimated axis velocity in counts per second.
	GetVelocity() float64
}

type axisController struct {
	persistence persistence.Persistence
	axis        *axis.Axis
	output      dac.Output

	tickRate    time.Duration
	pollingRate time.Duration

	velocityMu     sync.Mutex
	velocityWindow *rolling.PointPolicy
	lastCount      int32
	lastSampleTime time.Time
}

func NewAxisController(
	persistence persistence.Persistence,
	a *axis.Axis,
	output dac.Output,
	tickRate time.Duration,
	pollingRate time.Duration,
	velocityWindowSize int,
) AxisController {
	return &axisController{
		persistence:    persistence,
		axis:           a,
		output:         output,
		tickRate:       tickRate,
		pollingRate:    pollingRate,
		velocityWindow: util.CreateRollingWindow(velocityWindowSize),
	}
}

func (c *axisController) GetId() string {
	return c.axis.GetId()
}

func (c *axisController) Run(ctx context.Context) error {
	a := c.axis

	if err := c.output.Init(); err != nil {
		return err
	}

	// runtime tuning from a previous session wins over the config defaults
	gains, err := c.persistence.LoadAxisGains(a.GetId())
	if err == nil {
		ui.Info("Axis %s: using persisted tuning kp=%f ki=%f kd=%f", a.GetId(), gains.Kp, gains.Ki, gains.Kd)
		err = a.Init(gains)
	} else {
		err = a.Init()
	}
	if err != nil {
		return err
	}

	ui.Info("Starting controller loop for axis '%s'", a.GetId())

	// a failing loop must also stop its sibling
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	{
		// === velocity monitoring
		g.Add(func() error {
			tick := time.Tick(c.pollingRate)
			for {
				select {
				case <-loopCtx.Done():
					return nil
				case <-tick:
					c.measureVelocity()
				}
			}
		}, func(err error) {
			if err != nil {
				ui.Warning("Error monitoring axis velocity: %v", err)
			}
			cancel()
		})
	}
	{
		// === control loop
		g.Add(func() error {
			tick := time.Tick(c.tickRate)
			for {
				select {
				case <-loopCtx.Done():
					return nil
				case <-tick:
					err := c.UpdateAxis()
					if err != nil {
						ui.Error("Error in AxisController for axis %s: %v", a.GetId(), err)
						return err
					}
				}
			}
		}, func(err error) {
			if err != nil {
				ui.Warning("Error stepping axis %s: %v", a.GetId(), err)
			}
			cancel()
		})
	}

	err = g.Run()

	// leave the amplifier at zero effort on the way out
	c.trySetSafeOutput()
	return err
}

// UpdateAxis advances the axis by one control cycle and latches the
// resulting code into the DAC. The safe code is latched even when the
// cycle fails.
func (c *axisController) UpdateAxis() error {
	code, err := c.axis.Step()
	if err != nil {
		_ = c.output.Write(code)
		return err
	}
	return c.output.Write(code)
}

func (c *axisController) GetVelocity() float64 {
	c.velocityMu.Lock()
	defer c.velocityMu.Unlock()
	return util.GetWindowAvg(c.velocityWindow)
}

func (c *axisController) measureVelocity() {
	c.velocityMu.Lock()
	defer c.velocityMu.Unlock()

	now := time.Now()
	count := c.axis.GetCountLast()

	if !c.lastSampleTime.IsZero() {
		dt := now.Sub(c.lastSampleTime).Seconds()
		if dt > 0 {
			c.velocityWindow.Append(float64(count-c.lastCount) / dt)
		}
	}

	c.lastCount = count
	c.lastSampleTime = now
}

func (c *axisController) trySetSafeOutput() {
	if err := c.output.Write(axis.SafeCode); err != nil {
		ui.Warning("Unable to set safe output for axis %s: %v", c.axis.GetId(), err)
	}
}
