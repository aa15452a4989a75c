package statistics

import (
	"github.com/mfrox/mcb2go/internal/axis"
	"github.com/prometheus/client_golang/prometheus"
)

const axisSubsystem = "axis"

type AxisCollector struct {
	axes []*axis.Axis

	countDesired *prometheus.Desc
	countLast    *prometheus.Desc
	countError   *prometheus.Desc
	effort       *prometheus.Desc
	code         *prometheus.Desc
	configured   *prometheus.Desc
}

func NewAxisCollector(axes []*axis.Axis) *AxisCollector {
	return &AxisCollector{
		axes: axes,
		countDesired: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "count_desired"),
			"Target encoder position of the axis",
			[]string{"id"}, nil,
		),
		countLast: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "count_last"),
			"Last encoder position read from the axis",
			[]string{"id"}, nil,
		),
		countError: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "count_error"),
			"Position error of the axis at the last control cycle",
			[]string{"id"}, nil,
		),
		effort: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "effort"),
			"Control effort of the axis at the last control cycle",
			[]string{"id"}, nil,
		),
		code: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "code"),
			"DAC code corresponding to the control effort of the axis",
			[]string{"id"}, nil,
		),
		configured: prometheus.NewDesc(prometheus.BuildFQName(namespace, axisSubsystem, "configured"),
			"Whether the position sensor of the axis reported successful initialization",
			[]string{"id"}, nil,
		),
	}
}

func (collector *AxisCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.countDesired
	ch <- collector.countLast
	ch <- collector.countError
	ch <- collector.effort
	ch <- collector.code
	ch <- collector.configured
}

// Collect implements required collect function for all prometheus collectors
func (collector *AxisCollector) Collect(ch chan<- prometheus.Metric) {
	for _, a := range collector.axes {
		status := a.GetStatus()

		configured := 0.0
		if status.Configured {
			configured = 1.0
		}

		ch <- prometheus.MustNewConstMetric(collector.countDesired, prometheus.GaugeValue, float64(status.CountDesired), status.ID)
		ch <- prometheus.MustNewConstMetric(collector.countLast, prometheus.GaugeValue, float64(status.CountLast), status.ID)
		ch <- prometheus.MustNewConstMetric(collector.countError, prometheus.GaugeValue, float64(status.CountError), status.ID)
		ch <- prometheus.MustNewConstMetric(collector.effort, prometheus.GaugeValue, status.Effort, status.ID)
		ch <- prometheus.MustNewConstMetric(collector.code, prometheus.GaugeValue, float64(a.EffortToCode(status.Effort)), status.ID)
		ch <- prometheus.MustNewConstMetric(collector.configured, prometheus.GaugeValue, configured, status.ID)
	}
}
