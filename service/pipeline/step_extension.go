package pipeline

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

const (
	extensionAPIVersion = "2015-08-01"
	extensionNamespace  = "Microsoft.Web"
	extensionType       = "siteextensions"
)

type extensionStep struct{}

func (extensionStep) Name() StepName {
	return StepExtension
}

func (extensionStep) Requires() []Field {
	return []Field{FieldSession, FieldWebApp}
}

func (extensionStep) Provides() Field {
	return FieldExtension
}

func (s extensionStep) Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error) {
	id := provider.GenericResourceID{
		Namespace: extensionNamespace,
		Parent:    "sites/" + p.AppName,
		Type:      extensionType,
		Name:      d.ExtensionID,
	}
	e := provider.Envelope{
		Location:   p.Location,
		Properties: map[string]interface{}{},
	}

	r, err := pc.Session.Providers.Resources.CreateOrUpdate(ctx, p.SubscriptionID, p.ResourceGroup, id, extensionAPIVersion, e)
	if err != nil {
		return Context{}, newStepError(s.Name(), err)
	}

	pc.Extension = r

	return pc, nil
}
