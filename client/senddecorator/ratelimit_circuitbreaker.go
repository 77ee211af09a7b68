package senddecorator

import (
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/backpressure"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/httputil"
)

const (
	// Wait time used when a 429 response comes without Retry-After header.
	defaultWaitAfterTooManyRequests = 6 * time.Minute
)

func init() {
	// Throttled calls are surfaced to the caller instead of being retried.
	autorest.StatusCodesForRetry = removeElementFromSlice(autorest.StatusCodesForRetry, http.StatusTooManyRequests)
}

// RateLimitCircuitBreaker fails requests fast while the subscription is
// throttled. A 429 response closes the gate until the time named by its
// Retry-After header.
func RateLimitCircuitBreaker(g *backpressure.Backpressure) autorest.SendDecorator {
	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			if !g.CanProceed() {
				return nil, microerror.Maskf(tooManyRequestsError, "retry after %q", g.RetryAfter())
			}

			resp, err := s.Do(r)

			if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
				retryAfter, err := httputil.ParseRetryAfter(resp)
				if err != nil {
					retryAfter = time.Now().UTC().Add(defaultWaitAfterTooManyRequests)
				}

				g.NotBefore(retryAfter)
				return nil, microerror.Maskf(tooManyRequestsError, "retry after %q", g.RetryAfter())
			}

			return resp, err
		})
	}
}

func removeElementFromSlice(xs []int, x int) []int {
	// Zero capacity forces append to copy, so xs is never modified.
	out := xs[:0:0]
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}
