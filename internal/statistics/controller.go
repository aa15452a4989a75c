package statistics

import (
	"github.com/mfrox/mcb2go/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.AxisController

	velocity *prometheus.Desc
}

func NewControllerCollector(controllers []controller.AxisController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		velocity: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "velocity"),
			"Estimated axis velocity in encoder counts per second",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.velocity
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		ch <- prometheus.MustNewConstMetric(collector.velocity, prometheus.GaugeValue, contr.GetVelocity(), contr.GetId())
	}
}
