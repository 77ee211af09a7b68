package collector

import (
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_AzureAPIMetricsCollector(t *testing.T) {
	c, err := NewAzureAPIMetricsCollector(Config{Logger: microloggertest.New()})
	if err != nil {
		t.Fatal(err)
	}

	registry := prometheus.NewRegistry()
	err = registry.Register(c)
	if err != nil {
		t.Fatal(err)
	}

	opts := prometheus.Opts{Namespace: "test", Name: "total_calls", Help: "Total number of API calls"}
	labelNames := []string{"api_service"}

	first := c.GetCounterVec(opts, labelNames)
	second := c.GetCounterVec(opts, labelNames)
	if first != second {
		t.Fatal("expected the same counter vector for the same options")
	}

	first.With(prometheus.Labels{"api_service": "groupsclient"}).Inc()
	second.With(prometheus.Labels{"api_service": "groupsclient"}).Inc()
	second.With(prometheus.Labels{"api_service": "appsclient"}).Inc()

	if v := testutil.ToFloat64(first.With(prometheus.Labels{"api_service": "groupsclient"})); v != 2 {
		t.Fatalf("expected 2 calls got %f", v)
	}

	h := c.GetHistogramVec(prometheus.Opts{Namespace: "test", Name: "req_latency", Help: "API request latency"}, labelNames)
	h.With(prometheus.Labels{"api_service": "groupsclient"}).Observe(0.5)

	g := c.GetGaugeVec(prometheus.Opts{Namespace: "test", Name: "remaining_writes", Help: "Remaining writes"}, labelNames)
	if g != c.GetGaugeVec(prometheus.Opts{Namespace: "test", Name: "remaining_writes"}, labelNames) {
		t.Fatal("expected the same gauge vector for the same name")
	}
	g.With(prometheus.Labels{"api_service": "groupsclient"}).Set(1199)

	// two counter series, one gauge series and one histogram series
	n, err := testutil.GatherAndCount(registry)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4 series got %d", n)
	}
}

func Test_NewAzureAPIMetricsCollector_InvalidConfig(t *testing.T) {
	_, err := NewAzureAPIMetricsCollector(Config{})
	if !IsInvalidConfig(err) {
		t.Fatalf("expected invalidConfigError got %#v", err)
	}
}
