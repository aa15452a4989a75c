package axis

import (
	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/pid"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var AxisMap = cmap.New[*Axis]()

func RegisterAxis(a *Axis) {
	AxisMap.Set(a.GetId(), a)
}

func GetAxis(id string) (*Axis, bool) {
	return AxisMap.Get(id)
}

// Status is a snapshot of the externally visible state of an Axis.
type Status struct {
	ID           string                    `json:"id"`
	Configured   bool                      `json:"configured"`
	CountDesired int32                     `json:"countDesired"`
	CountLast    int32                     `json:"countLast"`
	CountError   int32                     `json:"countError"`
	Effort       float64                   `json:"effort"`
	Polarity     bool                      `json:"polarity"`
	OutputRange  configuration.OutputRange `json:"outputRange"`
	Gains        pid.Gains                 `json:"gains"`
}

func (a *Axis) GetStatus() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Status{
		ID:           a.config.ID,
		Configured:   a.configured,
		CountDesired: a.countDesired,
		CountLast:    a.countLast,
		CountError:   a.countError,
		Effort:       a.effort,
		Polarity:     a.polarity,
		OutputRange:  a.config.OutputRange,
		Gains:        a.pid.Gains(),
	}
}
