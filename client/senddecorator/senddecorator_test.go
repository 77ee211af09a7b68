package senddecorator

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/backpressure"
	"github.com/giantswarm/azure-webapp-provisioner/service/collector"
)

func senderWithStatus(status int, header http.Header) autorest.Sender {
	return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
		resp := &http.Response{
			Header:     header,
			Request:    r,
			StatusCode: status,
		}
		return resp, nil
	})
}

func Test_RateLimitCircuitBreaker(t *testing.T) {
	testCases := []struct {
		name              string
		status            int
		header            http.Header
		expectThrottled   bool
		expectGateClosed  bool
		minimumRetryAfter time.Duration
	}{
		{
			name:   "case 0: successful response passes through",
			status: http.StatusOK,
		},
		{
			name:   "case 1: server error passes through",
			status: http.StatusInternalServerError,
		},
		{
			name:              "case 2: 429 with Retry-After closes the gate",
			status:            http.StatusTooManyRequests,
			header:            http.Header{"Retry-After": []string{"120"}},
			expectThrottled:   true,
			expectGateClosed:  true,
			minimumRetryAfter: 100 * time.Second,
		},
		{
			name:              "case 3: 429 without Retry-After uses the default wait",
			status:            http.StatusTooManyRequests,
			header:            http.Header{},
			expectThrottled:   true,
			expectGateClosed:  true,
			minimumRetryAfter: 5 * time.Minute,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			g := &backpressure.Backpressure{}
			s := autorest.DecorateSender(senderWithStatus(tc.status, tc.header), RateLimitCircuitBreaker(g))

			req := httptest.NewRequest(http.MethodGet, "https://management.azure.com/subscriptions/s1", nil)

			resp, err := s.Do(req)
			if tc.expectThrottled {
				if !IsTooManyRequests(err) {
					t.Fatalf("expected tooManyRequestsError got %#v", err)
				}
			} else {
				if err != nil {
					t.Fatal(err)
				}
				if resp.StatusCode != tc.status {
					t.Fatalf("expected status %d got %d", tc.status, resp.StatusCode)
				}
			}

			if g.CanProceed() == tc.expectGateClosed {
				t.Fatalf("expected gate closed %t", tc.expectGateClosed)
			}
			if tc.expectGateClosed && time.Until(g.RetryAfter()) < tc.minimumRetryAfter {
				t.Fatalf("expected retry after at least %s, got %s", tc.minimumRetryAfter, time.Until(g.RetryAfter()))
			}

			if tc.expectGateClosed {
				// The next request must not reach the sender at all.
				reached := false
				s := autorest.DecorateSender(autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
					reached = true
					return &http.Response{StatusCode: http.StatusOK}, nil
				}), RateLimitCircuitBreaker(g))

				_, err := s.Do(req)
				if !IsTooManyRequests(err) {
					t.Fatalf("expected tooManyRequestsError got %#v", err)
				}
				if reached {
					t.Fatal("request reached the sender while the gate was closed")
				}
			}
		})
	}
}

func Test_StatusCodesForRetry_ExcludeTooManyRequests(t *testing.T) {
	for _, c := range autorest.StatusCodesForRetry {
		if c == http.StatusTooManyRequests {
			t.Fatal("429 must not be retried")
		}
	}
}

func Test_MetricsDecorator(t *testing.T) {
	c, err := collector.NewAzureAPIMetricsCollector(collector.Config{Logger: microloggertest.New()})
	if err != nil {
		t.Fatal(err)
	}

	statuses := []int{http.StatusOK, http.StatusNotFound, http.StatusTooManyRequests}
	for _, status := range statuses {
		s := autorest.DecorateSender(senderWithStatus(status, http.Header{}), MetricsDecorator("GroupsClient", "s1", c))

		_, err := s.Do(httptest.NewRequest(http.MethodPut, "https://management.azure.com/", nil))
		if err != nil {
			t.Fatal(err)
		}
	}

	labelNames := []string{"api_service", "subscription_id"}
	labels := prometheus.Labels{"api_service": "groupsclient", "subscription_id": "s1"}

	testCases := []struct {
		opts     prometheus.Opts
		expected float64
	}{
		{opts: totalCallsOpts, expected: 3},
		{opts: errorRespOpts, expected: 2},
		{opts: ratelimitedCallsOpts, expected: 1},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			v := testutil.ToFloat64(c.GetCounterVec(tc.opts, labelNames).With(labels))
			if v != tc.expected {
				t.Fatalf("%s: expected %f got %f", tc.opts.Name, tc.expected, v)
			}
		})
	}
}

func Test_MetricsDecorator_RemainingQuota(t *testing.T) {
	c, err := collector.NewAzureAPIMetricsCollector(collector.Config{Logger: microloggertest.New()})
	if err != nil {
		t.Fatal(err)
	}

	labelNames := []string{"api_service", "subscription_id"}
	labels := prometheus.Labels{"api_service": "appsclient", "subscription_id": "s1"}

	headers := []http.Header{
		{"X-Ms-Ratelimit-Remaining-Subscription-Writes": []string{"1199"}},
		{"X-Ms-Ratelimit-Remaining-Subscription-Reads": []string{"11999"}},
		{"X-Ms-Ratelimit-Remaining-Subscription-Writes": []string{"many"}},
	}
	for _, h := range headers {
		s := autorest.DecorateSender(senderWithStatus(http.StatusOK, h), MetricsDecorator("AppsClient", "s1", c))

		_, err := s.Do(httptest.NewRequest(http.MethodPut, "https://management.azure.com/", nil))
		if err != nil {
			t.Fatal(err)
		}
	}

	if v := testutil.ToFloat64(c.GetGaugeVec(remainingWritesOpts, labelNames).With(labels)); v != 1199 {
		t.Fatalf("expected 1199 remaining writes got %f", v)
	}
	if v := testutil.ToFloat64(c.GetGaugeVec(remainingReadsOpts, labelNames).With(labels)); v != 11999 {
		t.Fatalf("expected 11999 remaining reads got %f", v)
	}
	if v := testutil.ToFloat64(c.GetCounterVec(headerErrorsOpts, labelNames).With(labels)); v != 1 {
		t.Fatalf("expected 1 parsing error got %f", v)
	}
}

func Test_ConfigureClient(t *testing.T) {
	existing := autorest.SendDecorator(func(s autorest.Sender) autorest.Sender { return s })
	extra := LoggingDecorator("GroupsClient", microloggertest.New())

	c := autorest.Client{SendDecorators: []autorest.SendDecorator{existing}}
	ConfigureClient(&backpressure.Backpressure{}, &c, extra)

	if len(c.SendDecorators) != 3 {
		t.Fatalf("expected 3 decorators got %d", len(c.SendDecorators))
	}
}
