package pipeline

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

type resourceGroupStep struct{}

func (resourceGroupStep) Name() StepName {
	return StepResourceGroup
}

func (resourceGroupStep) Requires() []Field {
	return []Field{FieldSession}
}

func (resourceGroupStep) Provides() Field {
	return FieldResourceGroup
}

func (s resourceGroupStep) Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error) {
	params := provider.GroupParameters{
		Location: p.Location,
	}

	g, err := pc.Session.Providers.ResourceGroups.CreateOrUpdate(ctx, p.SubscriptionID, p.ResourceGroup, params)
	if err != nil {
		return Context{}, newStepError(s.Name(), err)
	}

	pc.ResourceGroup = g

	return pc, nil
}
