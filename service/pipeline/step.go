package pipeline

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

// StepName identifies a step in logs, errors and the report.
type StepName string

const (
	StepResourceGroup StepName = "resourcegroup"
	StepComponent     StepName = "component"
	StepPlan          StepName = "plan"
	StepWebApp        StepName = "webapp"
	StepExtension     StepName = "extension"
)

// Step creates or updates exactly one resource.
//
// Run must only read the fields named by Requires. On success it returns pc
// with the field named by Provides set. On failure it returns a *StepError
// and the zero Context.
type Step interface {
	Name() StepName
	Requires() []Field
	Provides() Field
	Run(ctx context.Context, pc Context, p setting.Parameters, d key.Descriptors) (Context, error)
}

// DefaultSteps returns the provisioning chain in dependency order.
func DefaultSteps() []Step {
	return []Step{
		resourceGroupStep{},
		componentStep{},
		planStep{},
		webAppStep{},
		extensionStep{},
	}
}

var stepStates = map[StepName]State{
	StepResourceGroup: CreatingGroup,
	StepComponent:     CreatingMonitoring,
	StepPlan:          CreatingPlan,
	StepWebApp:        CreatingApp,
	StepExtension:     AttachingExtension,
}

var stepLabels = map[StepName]string{
	StepResourceGroup: "Resource Group",
	StepComponent:     "App Insights",
	StepPlan:          "Hosting plan",
	StepWebApp:        "Web App",
	StepExtension:     "AppInsights extension",
}

// Label returns the human readable name of the resource step s creates.
func (s StepName) Label() string {
	if l, ok := stepLabels[s]; ok {
		return l
	}

	return string(s)
}
