package credential

import (
	"context"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// Provider obtains an authenticated session for a tenant. Implementations
// may block, e.g. until a user completes an interactive sign in.
type Provider interface {
	Authenticate(ctx context.Context, tenantID string) (Session, error)
}

// Session is the result of a successful authentication. It is what the Azure
// API clients need to sign their requests.
type Session struct {
	Authorizer  autorest.Authorizer
	Environment azure.Environment
	TenantID    string
}
