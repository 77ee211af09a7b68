package credential

import (
	"context"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
)

type ClientCredentialsConfig struct {
	Logger micrologger.Logger

	ClientID     string
	ClientSecret string
	Environment  azure.Environment
}

// ClientCredentialsProvider authenticates a service principal with a client
// secret. It is meant for unattended runs where no user can complete a device
// code sign in.
type ClientCredentialsProvider struct {
	logger micrologger.Logger

	clientID     string
	clientSecret string
	environment  azure.Environment
}

func NewClientCredentialsProvider(config ClientCredentialsConfig) (*ClientCredentialsProvider, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.ClientID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.ClientID must not be empty", config)
	}
	if config.ClientSecret == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.ClientSecret must not be empty", config)
	}
	if config.Environment.ActiveDirectoryEndpoint == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Environment.ActiveDirectoryEndpoint must not be empty", config)
	}

	p := &ClientCredentialsProvider{
		logger: config.Logger,

		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		environment:  config.Environment,
	}

	return p, nil
}

// Authenticate fetches a first token right away so that wrong credentials
// are reported before any resource is touched.
func (p *ClientCredentialsProvider) Authenticate(ctx context.Context, tenantID string) (Session, error) {
	if tenantID == "" {
		return Session{}, microerror.Maskf(invalidConfigError, "tenant ID must not be empty")
	}

	c := auth.NewClientCredentialsConfig(p.clientID, p.clientSecret, tenantID)
	c.AADEndpoint = p.environment.ActiveDirectoryEndpoint
	c.Resource = p.environment.ResourceManagerEndpoint

	spt, err := c.ServicePrincipalToken()
	if err != nil {
		return Session{}, microerror.Maskf(authError, "creating token for client %#q in tenant %#q: %s", p.clientID, tenantID, err)
	}

	err = spt.RefreshWithContext(ctx)
	if err != nil {
		return Session{}, microerror.Maskf(authError, "acquiring token for client %#q in tenant %#q: %s", p.clientID, tenantID, err)
	}

	p.logger.Debugf(ctx, "authenticated client %#q in tenant %#q", p.clientID, tenantID)

	s := Session{
		Authorizer:  autorest.NewBearerAuthorizer(spt),
		Environment: p.environment,
		TenantID:    tenantID,
	}

	return s, nil
}
