package credential

import (
	"context"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/adal"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/project"
)

const (
	// azureCLIClientID is the public client registration of the Azure CLI. It
	// is allowed to use the device code flow in every tenant.
	azureCLIClientID = "04b07795-8ddb-461a-bbee-02f9e1bf7b46"
)

type DeviceFlowConfig struct {
	Logger micrologger.Logger

	// ClientID defaults to the Azure CLI application.
	ClientID    string
	Environment azure.Environment
	// Sender is used for the token endpoint requests. It defaults to an
	// autorest client carrying the project user agent.
	Sender adal.Sender
}

// DeviceFlowProvider signs a user in with the OAuth device code flow. The
// instructions for the user are logged and Authenticate blocks until the
// sign in is confirmed, denied or ctx is done.
type DeviceFlowProvider struct {
	logger micrologger.Logger

	clientID    string
	environment azure.Environment
	sender      adal.Sender
}

func NewDeviceFlowProvider(config DeviceFlowConfig) (*DeviceFlowProvider, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Environment.ActiveDirectoryEndpoint == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Environment.ActiveDirectoryEndpoint must not be empty", config)
	}
	if config.Environment.ResourceManagerEndpoint == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Environment.ResourceManagerEndpoint must not be empty", config)
	}

	if config.ClientID == "" {
		config.ClientID = azureCLIClientID
	}
	if config.Sender == nil {
		config.Sender = autorest.NewClientWithUserAgent(project.UserAgent())
	}

	p := &DeviceFlowProvider{
		logger: config.Logger,

		clientID:    config.ClientID,
		environment: config.Environment,
		sender:      config.Sender,
	}

	return p, nil
}

func (p *DeviceFlowProvider) Authenticate(ctx context.Context, tenantID string) (Session, error) {
	if tenantID == "" {
		return Session{}, microerror.Maskf(invalidConfigError, "tenant ID must not be empty")
	}

	oauthConfig, err := adal.NewOAuthConfig(p.environment.ActiveDirectoryEndpoint, tenantID)
	if err != nil {
		return Session{}, microerror.Maskf(authError, "building OAuth config for tenant %#q: %s", tenantID, err)
	}

	resource := p.environment.ResourceManagerEndpoint

	p.logger.Debugf(ctx, "requesting device code for tenant %#q", tenantID)

	code, err := adal.InitiateDeviceAuthWithContext(ctx, p.sender, *oauthConfig, p.clientID, resource)
	if err != nil {
		return Session{}, microerror.Maskf(authError, "initiating device flow for tenant %#q: %s", tenantID, err)
	}

	if code.Message != nil {
		p.logger.LogCtx(ctx, "level", "info", "message", *code.Message)
	}

	token, err := adal.WaitForUserCompletionWithContext(ctx, p.sender, code)
	if err != nil {
		return Session{}, microerror.Maskf(authError, "waiting for device flow completion in tenant %#q: %s", tenantID, err)
	}

	spt, err := adal.NewServicePrincipalTokenFromManualToken(*oauthConfig, p.clientID, resource, *token)
	if err != nil {
		return Session{}, microerror.Maskf(authError, "creating token for tenant %#q: %s", tenantID, err)
	}

	p.logger.Debugf(ctx, "signed in to tenant %#q", tenantID)

	s := Session{
		Authorizer:  autorest.NewBearerAuthorizer(spt),
		Environment: p.environment,
		TenantID:    tenantID,
	}

	return s, nil
}
