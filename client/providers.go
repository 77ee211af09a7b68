package client

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/azure-sdk-for-go/services/web/mgmt/2019-08-01/web"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
)

// NewProviderSet exposes the clients of cs through the provider interfaces.
func NewProviderSet(cs *AzureClientSet) *provider.Set {
	return &provider.Set{
		Plans:          plans{subscriptionID: cs.SubscriptionID, client: cs.PlansClient},
		ResourceGroups: resourceGroups{subscriptionID: cs.SubscriptionID, client: cs.GroupsClient},
		Resources:      genericResources{subscriptionID: cs.SubscriptionID, client: cs.GenericClient},
		WebApps:        webApps{subscriptionID: cs.SubscriptionID, client: cs.AppsClient},
	}
}

type resourceGroups struct {
	subscriptionID string
	client         *resources.GroupsClient
}

func (p resourceGroups) CreateOrUpdate(ctx context.Context, subscriptionID, group string, params provider.GroupParameters) (*provider.ResourceGroupRecord, error) {
	err := checkSubscription(p.subscriptionID, subscriptionID)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	g, err := p.client.CreateOrUpdate(ctx, group, resources.Group{
		Location: to.StringPtr(params.Location),
		Tags:     toTags(params.Tags),
	})
	if err != nil {
		return nil, microerror.Mask(err)
	}

	r := &provider.ResourceGroupRecord{
		ID:       to.String(g.ID),
		Name:     to.String(g.Name),
		Location: to.String(g.Location),
	}
	if g.Properties != nil {
		r.ProvisioningState = to.String(g.Properties.ProvisioningState)
	}

	return r, nil
}

type genericResources struct {
	subscriptionID string
	client         *GenericClient
}

func (p genericResources) CreateOrUpdate(ctx context.Context, subscriptionID, group string, id provider.GenericResourceID, apiVersion string, e provider.Envelope) (*provider.ResourceRecord, error) {
	err := checkSubscription(p.subscriptionID, subscriptionID)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	properties := e.Properties
	if properties == nil {
		properties = map[string]interface{}{}
	}

	res, err := p.client.CreateOrUpdate(ctx, group, id.Namespace, id.Parent, id.Type, id.Name, apiVersion, resources.GenericResource{
		Location:   to.StringPtr(e.Location),
		Properties: properties,
		Tags:       toTags(e.Tags),
	})
	if err != nil {
		return nil, microerror.Mask(err)
	}

	r := &provider.ResourceRecord{
		ID:       to.String(res.ID),
		Name:     to.String(res.Name),
		Type:     to.String(res.Type),
		Location: to.String(res.Location),
	}
	if m, ok := res.Properties.(map[string]interface{}); ok {
		r.Properties = m
	}

	return r, nil
}

type plans struct {
	subscriptionID string
	client         *web.AppServicePlansClient
}

func (p plans) CreateOrUpdate(ctx context.Context, subscriptionID, group, plan string, params provider.PlanParameters) (*provider.PlanRecord, error) {
	err := checkSubscription(p.subscriptionID, subscriptionID)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	future, err := p.client.CreateOrUpdate(ctx, group, plan, web.AppServicePlan{
		Location: to.StringPtr(params.Location),
		Sku: &web.SkuDescription{
			Name:     to.StringPtr(params.SkuName),
			Capacity: to.Int32Ptr(params.Capacity),
		},
	})
	if err != nil {
		return nil, microerror.Mask(err)
	}

	err = future.WaitForCompletionRef(ctx, p.client.Client)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	asp, err := future.Result(*p.client)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	r := &provider.PlanRecord{
		ID:       to.String(asp.ID),
		Name:     to.String(asp.Name),
		Location: to.String(asp.Location),
	}
	if asp.Sku != nil {
		r.SkuName = to.String(asp.Sku.Name)
	}

	return r, nil
}

type webApps struct {
	subscriptionID string
	client         *web.AppsClient
}

func (p webApps) CreateOrUpdate(ctx context.Context, subscriptionID, group, app string, params provider.WebAppParameters) (*provider.WebAppRecord, error) {
	err := checkSubscription(p.subscriptionID, subscriptionID)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	var settings []web.NameValuePair
	for _, s := range params.AppSettings {
		settings = append(settings, web.NameValuePair{
			Name:  to.StringPtr(s.Name),
			Value: to.StringPtr(s.Value),
		})
	}

	future, err := p.client.CreateOrUpdate(ctx, group, app, web.Site{
		Kind:     to.StringPtr(params.Kind),
		Location: to.StringPtr(params.Location),
		SiteProperties: &web.SiteProperties{
			ServerFarmID: to.StringPtr(params.ServerFarmID),
			SiteConfig: &web.SiteConfig{
				AppSettings: &settings,
			},
		},
	})
	if err != nil {
		return nil, microerror.Mask(err)
	}

	err = future.WaitForCompletionRef(ctx, p.client.Client)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	site, err := future.Result(*p.client)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	r := &provider.WebAppRecord{
		ID:   to.String(site.ID),
		Name: to.String(site.Name),
	}
	if site.SiteProperties != nil {
		r.DefaultHostName = to.String(site.SiteProperties.DefaultHostName)
		r.State = to.String(site.SiteProperties.State)
	}

	return r, nil
}

func checkSubscription(bound, requested string) error {
	if bound != requested {
		return microerror.Maskf(subscriptionMismatchError, "client set is bound to subscription %#q, got %#q", bound, requested)
	}

	return nil
}

func toTags(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}

	m := make(map[string]*string, len(tags))
	for k, v := range tags {
		m[k] = to.StringPtr(v)
	}

	return m
}
