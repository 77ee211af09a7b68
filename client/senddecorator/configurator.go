package senddecorator

import (
	"github.com/Azure/go-autorest/autorest"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/backpressure"
)

// ConfigureClient installs the given decorators and the rate limit circuit
// breaker on c. Existing SendDecorators are preserved.
//
// autorest wraps the sender in slice order, so the last decorator runs
// first. The circuit breaker is appended last to short-circuit throttled
// requests before anything else runs, while the given decorators still see
// the raw 429 responses.
//
// Once c.SendDecorators is non-empty autorest ignores the per call
// decorators of the generated clients. Configured clients therefore do not
// retry on their own.
func ConfigureClient(g *backpressure.Backpressure, c *autorest.Client, decorators ...autorest.SendDecorator) {
	var all []autorest.SendDecorator
	all = append(all, c.SendDecorators...)
	all = append(all, decorators...)
	all = append(all, RateLimitCircuitBreaker(g))

	c.SendDecorators = all
}
