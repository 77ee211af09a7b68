// Package credentialtest provides a credential.Provider that never talks to
// Azure Active Directory.
package credentialtest

import (
	"context"
	"sync"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
)

type Config struct {
	// Err is returned by Authenticate when set.
	Err error
	// Environment defaults to the public cloud.
	Environment *azure.Environment
}

type Provider struct {
	err         error
	environment azure.Environment

	mutex   sync.Mutex
	tenants []string
}

func New(config Config) *Provider {
	env := azure.PublicCloud
	if config.Environment != nil {
		env = *config.Environment
	}

	return &Provider{
		err:         config.Err,
		environment: env,
	}
}

func (p *Provider) Authenticate(ctx context.Context, tenantID string) (credential.Session, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.tenants = append(p.tenants, tenantID)

	if p.err != nil {
		return credential.Session{}, p.err
	}

	s := credential.Session{
		Authorizer:  autorest.NullAuthorizer{},
		Environment: p.environment,
		TenantID:    tenantID,
	}

	return s, nil
}

// Calls returns the tenant IDs Authenticate was called with, in order.
func (p *Provider) Calls() []string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return append([]string(nil), p.tenants...)
}
