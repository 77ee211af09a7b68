package senddecorator

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/giantswarm/azure-webapp-provisioner/service/collector"
)

const (
	metricsNamespace = "azure_webapp_provisioner_azure_api"

	remainingReadsHeaderName  = "x-ms-ratelimit-remaining-subscription-reads"
	remainingWritesHeaderName = "x-ms-ratelimit-remaining-subscription-writes"
)

var (
	totalCallsOpts       = prometheus.Opts{Namespace: metricsNamespace, Name: "total_calls", Help: "Total number of API calls"}
	ratelimitedCallsOpts = prometheus.Opts{Namespace: metricsNamespace, Name: "ratelimited_calls", Help: "Total number of API calls ratelimited"}
	errorRespOpts        = prometheus.Opts{Namespace: metricsNamespace, Name: "error_resp", Help: "Total number of API error responses"}
	callLatencyOpts      = prometheus.Opts{Namespace: metricsNamespace, Name: "req_latency", Help: "API request latency"}

	remainingReadsOpts  = prometheus.Opts{Namespace: metricsNamespace, Subsystem: "rate_limit", Name: "reads", Help: "Remaining number of reads allowed."}
	remainingWritesOpts = prometheus.Opts{Namespace: metricsNamespace, Subsystem: "rate_limit", Name: "writes", Help: "Remaining number of writes allowed."}
	headerErrorsOpts    = prometheus.Opts{Namespace: metricsNamespace, Subsystem: "rate_limit", Name: "parsing_errors", Help: "Errors trying to parse the remaining requests from the response header"}
)

// MetricsDecorator counts calls, error responses and throttled calls per
// API client and subscription and observes their latency. The remaining
// subscription quota Azure reports in the response headers is kept as
// gauges.
func MetricsDecorator(name, subscriptionID string, metricsCollector collector.AzureAPIMetrics) autorest.SendDecorator {
	labels := prometheus.Labels{
		"api_service":     strings.ToLower(name),
		"subscription_id": subscriptionID,
	}

	var labelNames []string
	for k := range labels {
		labelNames = append(labelNames, k)
	}
	sort.Strings(labelNames)

	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := s.Do(r)

			elapsed := time.Since(start)

			metricsCollector.GetCounterVec(totalCallsOpts, labelNames).With(labels).Inc()
			metricsCollector.GetHistogramVec(callLatencyOpts, labelNames).With(labels).Observe(elapsed.Seconds())

			if resp != nil && resp.StatusCode >= 400 {
				metricsCollector.GetCounterVec(errorRespOpts, labelNames).With(labels).Inc()

				if resp.StatusCode == http.StatusTooManyRequests {
					metricsCollector.GetCounterVec(ratelimitedCallsOpts, labelNames).With(labels).Inc()
				}
			}

			if resp != nil {
				setRemaining(metricsCollector, resp.Header.Get(remainingReadsHeaderName), remainingReadsOpts, labelNames, labels)
				setRemaining(metricsCollector, resp.Header.Get(remainingWritesHeaderName), remainingWritesOpts, labelNames, labels)
			}

			return resp, err
		})
	}
}

func setRemaining(metricsCollector collector.AzureAPIMetrics, header string, opts prometheus.Opts, labelNames []string, labels prometheus.Labels) {
	// Azure only sends the header matching the request method.
	if header == "" {
		return
	}

	v, err := strconv.ParseFloat(header, 64)
	if err != nil {
		metricsCollector.GetCounterVec(headerErrorsOpts, labelNames).With(labels).Inc()
		return
	}

	metricsCollector.GetGaugeVec(opts, labelNames).With(labels).Set(v)
}
