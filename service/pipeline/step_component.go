package pipeline

import (
	"context"

	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

const (
	componentAPIVersion = "2014-04-01"
	componentNamespace  = "microsoft.insights"
	componentType       = "components"
)

// componentStep creates the Application Insights component. Its hidden link
// tag points at the web app, which only exists after webAppStep. The portal
// resolves the link once both resources are there.
type componentStep struct{}

func (componentStep) Name() StepName {
	return StepComponent
}

func (componentStep) Requires() []Field {
	return []Field{FieldSession, FieldResourceGroup}
}

func (componentStep) Provides() Field {
	return FieldComponent
}

func (s componentStep) Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error) {
	id := provider.GenericResourceID{
		Namespace: componentNamespace,
		Type:      componentType,
		Name:      d.ComponentName,
	}
	e := provider.Envelope{
		Location:   p.Location,
		Properties: map[string]interface{}{},
		Tags: map[string]string{
			d.HiddenLinkTag: key.HiddenLinkValue,
		},
	}

	r, err := pc.Session.Providers.Resources.CreateOrUpdate(ctx, p.SubscriptionID, p.ResourceGroup, id, componentAPIVersion, e)
	if err != nil {
		return Context{}, newStepError(s.Name(), err)
	}

	if _, ok := r.StringProperty(instrumentationKeyProperty); !ok {
		err = microerror.Maskf(missingInstrumentationKeyError, "component %#q has no %s", r.ID, instrumentationKeyProperty)
		return Context{}, newStepError(s.Name(), err)
	}

	pc.Component = r

	return pc, nil
}
