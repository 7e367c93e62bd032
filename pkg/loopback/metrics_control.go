package loopback

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	controlPrometheusMetrics sync.Once

	controlOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "loopback",
			Name:      "operations_total",
			Help:      "Total number of operations against loop devices.",
		},
		[]string{"operation", "result"})
)

type operationMetrics struct {
	success prometheus.Counter
	failure prometheus.Counter
}

func newOperationMetrics(operation string) operationMetrics {
	return operationMetrics{
		success: controlOperationsTotal.WithLabelValues(operation, "Success"),
		failure: controlOperationsTotal.WithLabelValues(operation, "Failure"),
	}
}

func (m *operationMetrics) observe(err error) {
	if err == nil {
		m.success.Inc()
	} else {
		m.failure.Inc()
	}
}

type deviceMetrics struct {
	attach operationMetrics
	detach operationMetrics
}

type metricsControl struct {
	base Control

	nextFree operationMetrics
	device   *deviceMetrics
}

// NewMetricsControl is a decorator for Control that exposes the number
// of loop devices claimed, attached and detached through Prometheus.
// Comparing the number of attachments and detachments can be used to
// detect leaked loop devices.
func NewMetricsControl(base Control) Control {
	controlPrometheusMetrics.Do(func() {
		prometheus.MustRegister(controlOperationsTotal)
	})

	return &metricsControl{
		base: base,

		nextFree: newOperationMetrics("NextFree"),
		device: &deviceMetrics{
			attach: newOperationMetrics("Attach"),
			detach: newOperationMetrics("Detach"),
		},
	}
}

func (c *metricsControl) NextFree() (Device, error) {
	d, err := c.base.NextFree()
	c.nextFree.observe(err)
	if err != nil {
		return nil, err
	}
	return &metricsDevice{
		base:    d,
		metrics: c.device,
	}, nil
}

type metricsDevice struct {
	base    Device
	metrics *deviceMetrics
}

func (d *metricsDevice) Path() string {
	return d.base.Path()
}

func (d *metricsDevice) Attach(backingFilePath string, offsetBytes uint64) error {
	err := d.base.Attach(backingFilePath, offsetBytes)
	d.metrics.attach.observe(err)
	return err
}

func (d *metricsDevice) Detach() error {
	err := d.base.Detach()
	d.metrics.detach.observe(err)
	return err
}
