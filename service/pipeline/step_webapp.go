package pipeline

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

const (
	instrumentationKeySetting = "APPINSIGHTS_INSTRUMENTATIONKEY"
)

type webAppStep struct{}

func (webAppStep) Name() StepName {
	return StepWebApp
}

func (webAppStep) Requires() []Field {
	return []Field{FieldSession, FieldPlan, FieldComponent}
}

func (webAppStep) Provides() Field {
	return FieldWebApp
}

func (s webAppStep) Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error) {
	params := provider.WebAppParameters{
		Location:     p.Location,
		Kind:         key.WebAppKind,
		ServerFarmID: pc.Plan.ID,
		AppSettings: []provider.AppSetting{
			{Name: instrumentationKeySetting, Value: pc.InstrumentationKey()},
		},
	}

	app, err := pc.Session.Providers.WebApps.CreateOrUpdate(ctx, p.SubscriptionID, p.ResourceGroup, p.AppName, params)
	if err != nil {
		return Context{}, newStepError(s.Name(), err)
	}

	pc.WebApp = app

	return pc, nil
}
