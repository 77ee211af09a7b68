package collector

import "github.com/prometheus/client_golang/prometheus"

// AzureAPIMetrics hands out metric vectors keyed by namespace and name, so
// every Azure API client of a subscription reports into the same series.
type AzureAPIMetrics interface {
	GetCounterVec(opts prometheus.Opts, labelNames []string) *prometheus.CounterVec
	GetGaugeVec(opts prometheus.Opts, labelNames []string) *prometheus.GaugeVec
	GetHistogramVec(opts prometheus.Opts, labelNames []string) *prometheus.HistogramVec
}
