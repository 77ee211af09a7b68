package client

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/azure-sdk-for-go/services/web/mgmt/2019-08-01/web"
	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-webapp-provisioner/client/senddecorator"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/backpressure"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/project"
	"github.com/giantswarm/azure-webapp-provisioner/service/collector"
)

const (
	defaultAzureGUID = "37f13270-5c7a-56ff-9211-8426baaeaabd"
)

type AzureClientSetConfig struct {
	Authorizer       autorest.Authorizer
	Logger           micrologger.Logger
	MetricsCollector collector.AzureAPIMetrics

	// BaseURI is the resource manager endpoint of the cloud environment.
	BaseURI string
	// PartnerID is sent as pid-<PartnerID> user agent. It defaults to the
	// Giant Swarm partner GUID.
	PartnerID      string
	SubscriptionID string
}

// AzureClientSet is the collection of Azure API clients.
type AzureClientSet struct {
	// The subscription ID this client set is configured with.
	SubscriptionID string

	// AppsClient manages web apps.
	AppsClient *web.AppsClient
	// GenericClient manages resources without a dedicated client, e.g.
	// Application Insights components and site extensions.
	GenericClient *GenericClient
	// GroupsClient manages ARM resource groups.
	GroupsClient *resources.GroupsClient
	// PlansClient manages App Service plans.
	PlansClient *web.AppServicePlansClient
}

// NewAzureClientSet returns the Azure API clients of one subscription. All
// clients share one backpressure gate, because throttling is applied per
// subscription.
func NewAzureClientSet(config AzureClientSetConfig) (*AzureClientSet, error) {
	if config.Authorizer == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Authorizer must not be empty", config)
	}
	if config.BaseURI == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.BaseURI must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.MetricsCollector == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.MetricsCollector must not be empty", config)
	}
	if config.SubscriptionID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.SubscriptionID must not be empty", config)
	}

	if config.PartnerID == "" {
		config.PartnerID = defaultAzureGUID
	}

	g := &backpressure.Backpressure{}

	appsClient := web.NewAppsClientWithBaseURI(config.BaseURI, config.SubscriptionID)
	prepareClient(&appsClient.Client, "AppsClient", g, config)

	genericClient := NewGenericClientWithBaseURI(config.BaseURI, config.SubscriptionID)
	prepareClient(&genericClient.Client, "GenericClient", g, config)

	groupsClient := resources.NewGroupsClientWithBaseURI(config.BaseURI, config.SubscriptionID)
	prepareClient(&groupsClient.Client, "GroupsClient", g, config)

	plansClient := web.NewAppServicePlansClientWithBaseURI(config.BaseURI, config.SubscriptionID)
	prepareClient(&plansClient.Client, "AppServicePlansClient", g, config)

	clientSet := &AzureClientSet{
		SubscriptionID: config.SubscriptionID,

		AppsClient:    &appsClient,
		GenericClient: &genericClient,
		GroupsClient:  &groupsClient,
		PlansClient:   &plansClient,
	}

	return clientSet, nil
}

func prepareClient(client *autorest.Client, name string, g *backpressure.Backpressure, config AzureClientSetConfig) *autorest.Client {
	client.Authorizer = config.Authorizer
	_ = client.AddToUserAgent(fmt.Sprintf("pid-%s", config.PartnerID))
	_ = client.AddToUserAgent(project.UserAgent())
	senddecorator.ConfigureClient(g, client,
		senddecorator.MetricsDecorator(name, config.SubscriptionID, config.MetricsCollector),
		senddecorator.LoggingDecorator(name, config.Logger),
	)

	return client
}
