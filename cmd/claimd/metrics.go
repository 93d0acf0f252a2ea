package main

import (
	"fmt"
	"io"

	"github.com/iov-one/claimable/x/escrow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// metricsDump collects the escrow counters of a single command run. A nil
// *metricsDump collects nothing.
type metricsDump struct {
	reg    *prometheus.Registry
	escrow *escrow.Metrics
}

func newMetricsDump(enabled bool) (*metricsDump, error) {
	if !enabled {
		return nil, nil
	}
	reg := prometheus.NewRegistry()
	m, err := escrow.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("cannot register metrics: %s", err)
	}
	return &metricsDump{reg: reg, escrow: m}, nil
}

func (d *metricsDump) escrowMetrics() *escrow.Metrics {
	if d == nil {
		return nil
	}
	return d.escrow
}

// write prints all collected metrics in the Prometheus text format.
func (d *metricsDump) write(w io.Writer) error {
	if d == nil {
		return nil
	}
	families, err := d.reg.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather metrics: %s", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
