package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStorefrontMetricsExportsCountersAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorefrontMetrics(reg)

	metrics.IncOrderCreated("pix")
	metrics.IncOrderCreated("pix")
	metrics.IncStatusUpdate("confirmed")
	metrics.SetActiveSessions(3)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "orders_created_total", "payment_method", "pix"); err != nil {
		t.Fatalf("fetch created: %v", err)
	} else if got != 2 {
		t.Fatalf("expected created=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "order_status_updates_total", "status", "confirmed"); err != nil {
		t.Fatalf("fetch updates: %v", err)
	} else if got != 1 {
		t.Fatalf("expected updates=1, got %f", got)
	}

	if got, err := fetchGaugeValue(mfs, "checkout_sessions_active"); err != nil {
		t.Fatalf("fetch gauge: %v", err)
	} else if got != 3 {
		t.Fatalf("expected 3 active sessions, got %f", got)
	}
}

func TestStorefrontMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *StorefrontMetrics
	metrics.IncOrderCreated("cash")
	metrics.IncStatusUpdate("")
	metrics.SetActiveSessions(0)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchGaugeValue(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		return metric.GetGauge().GetValue(), nil
	}
	return 0, fmt.Errorf("metric %q has no samples", name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
