// Package providertest implements the provider interfaces in memory with
// create-or-update semantics. Repeating a call with the same inputs returns
// a record with the same ID and does not create a second resource.
package providertest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
)

const (
	OperationGroup     = "resourcegroups"
	OperationResource  = "resources"
	OperationPlan      = "plans"
	OperationWebApp    = "webapps"
	instrumentationKey = "InstrumentationKey"
)

// Call is one recorded provider invocation.
type Call struct {
	Operation string
	ID        string
}

// Cloud is an in-memory resource manager. It implements provider.Factory and
// hands out itself for every provider kind.
type Cloud struct {
	mutex sync.Mutex

	calls     []Call
	failures  map[string]error
	resources map[string]interface{}
}

func New() *Cloud {
	return &Cloud{
		failures:  map[string]error{},
		resources: map[string]interface{}{},
	}
}

// Fail makes every following call of the given operation return err.
func (c *Cloud) Fail(operation string, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.failures[operation] = err
}

func (c *Cloud) Calls() []Call {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return append([]Call(nil), c.calls...)
}

// IDs returns the IDs of all stored resources in lexical order.
func (c *Cloud) IDs() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var ids []string
	for id := range c.resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (c *Cloud) Providers(s credential.Session, subscriptionID string) (*provider.Set, error) {
	if s.Authorizer == nil {
		return nil, microerror.Maskf(invalidConfigError, "session must carry an authorizer")
	}

	set := &provider.Set{
		Plans:          planProvider{c},
		ResourceGroups: groupProvider{c},
		Resources:      resourceProvider{c},
		WebApps:        webAppProvider{c},
	}

	return set, nil
}

func (c *Cloud) record(operation, id, group string) error {
	c.calls = append(c.calls, Call{Operation: operation, ID: id})

	if err, ok := c.failures[operation]; ok {
		return err
	}

	if group != "" {
		if _, ok := c.resources[group]; !ok {
			return microerror.Maskf(notFoundError, "resource group %#q", group)
		}
	}

	return nil
}

type groupProvider struct{ c *Cloud }

func (p groupProvider) CreateOrUpdate(ctx context.Context, subscriptionID, group string, params provider.GroupParameters) (*provider.ResourceGroupRecord, error) {
	p.c.mutex.Lock()
	defer p.c.mutex.Unlock()

	id := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, group)

	err := p.c.record(OperationGroup, id, "")
	if err != nil {
		return nil, err
	}

	r := &provider.ResourceGroupRecord{
		ID:                id,
		Name:              group,
		Location:          params.Location,
		ProvisioningState: "Succeeded",
	}
	p.c.resources[id] = *r

	return r, nil
}

type resourceProvider struct{ c *Cloud }

func (p resourceProvider) CreateOrUpdate(ctx context.Context, subscriptionID, group string, rid provider.GenericResourceID, apiVersion string, e provider.Envelope) (*provider.ResourceRecord, error) {
	p.c.mutex.Lock()
	defer p.c.mutex.Unlock()

	id := rid.ResourceID(subscriptionID, group)

	err := p.c.record(OperationResource, id, groupID(subscriptionID, group))
	if err != nil {
		return nil, err
	}

	if rid.Parent != "" {
		parentID := fmt.Sprintf("%s/providers/%s/%s", groupID(subscriptionID, group), rid.Namespace, rid.Parent)
		if _, ok := p.c.resources[parentID]; !ok {
			return nil, microerror.Maskf(notFoundError, "parent resource %#q", parentID)
		}
	}

	properties := map[string]interface{}{}
	for k, v := range e.Properties {
		properties[k] = v
	}

	// Existing components keep their key across updates.
	if existing, ok := p.c.resources[id].(provider.ResourceRecord); ok {
		if key, ok := existing.Properties[instrumentationKey]; ok {
			properties[instrumentationKey] = key
		}
	} else if rid.Type == "components" {
		properties[instrumentationKey] = "ikey-" + rid.Name
	}

	r := &provider.ResourceRecord{
		ID:         id,
		Name:       rid.Name,
		Type:       rid.Namespace + "/" + rid.Type,
		Location:   e.Location,
		Properties: properties,
	}
	p.c.resources[id] = *r

	return r, nil
}

type planProvider struct{ c *Cloud }

func (p planProvider) CreateOrUpdate(ctx context.Context, subscriptionID, group, plan string, params provider.PlanParameters) (*provider.PlanRecord, error) {
	p.c.mutex.Lock()
	defer p.c.mutex.Unlock()

	id := fmt.Sprintf("%s/providers/Microsoft.Web/serverfarms/%s", groupID(subscriptionID, group), plan)

	err := p.c.record(OperationPlan, id, groupID(subscriptionID, group))
	if err != nil {
		return nil, err
	}

	r := &provider.PlanRecord{
		ID:       id,
		Name:     plan,
		Location: params.Location,
		SkuName:  params.SkuName,
	}
	p.c.resources[id] = *r

	return r, nil
}

type webAppProvider struct{ c *Cloud }

func (p webAppProvider) CreateOrUpdate(ctx context.Context, subscriptionID, group, app string, params provider.WebAppParameters) (*provider.WebAppRecord, error) {
	p.c.mutex.Lock()
	defer p.c.mutex.Unlock()

	id := fmt.Sprintf("%s/providers/Microsoft.Web/sites/%s", groupID(subscriptionID, group), app)

	err := p.c.record(OperationWebApp, id, groupID(subscriptionID, group))
	if err != nil {
		return nil, err
	}

	if _, ok := p.c.resources[params.ServerFarmID]; !ok {
		return nil, microerror.Maskf(notFoundError, "server farm %#q", params.ServerFarmID)
	}

	r := &provider.WebAppRecord{
		ID:              id,
		Name:            app,
		DefaultHostName: app + ".azurewebsites.net",
		State:           "Running",
	}
	p.c.resources[id] = *r

	return r, nil
}

func groupID(subscriptionID, group string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, group)
}
