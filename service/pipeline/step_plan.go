package pipeline

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

type planStep struct{}

func (planStep) Name() StepName {
	return StepPlan
}

func (planStep) Requires() []Field {
	return []Field{FieldSession}
}

func (planStep) Provides() Field {
	return FieldPlan
}

func (s planStep) Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error) {
	params := provider.PlanParameters{
		Location: p.Location,
		SkuName:  d.PlanTier,
		Capacity: d.PlanCapacity,
	}

	plan, err := pc.Session.Providers.Plans.CreateOrUpdate(ctx, p.SubscriptionID, p.ResourceGroup, d.PlanName, params)
	if err != nil {
		return Context{}, newStepError(s.Name(), err)
	}

	pc.Plan = plan

	return pc, nil
}
