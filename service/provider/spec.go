// Package provider declares the resource manager operations the provisioning
// pipeline consumes. Every operation is a create-or-update that blocks until
// the remote side reports a terminal state.
package provider

//go:generate mockgen -destination mock_provider/mock_provider.go -source spec.go

import (
	"context"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
)

type ResourceGroups interface {
	CreateOrUpdate(ctx context.Context, subscriptionID, group string, p GroupParameters) (*ResourceGroupRecord, error)
}

// Resources creates arbitrary resources by provider namespace and type with
// a caller chosen API version.
type Resources interface {
	CreateOrUpdate(ctx context.Context, subscriptionID, group string, id GenericResourceID, apiVersion string, e Envelope) (*ResourceRecord, error)
}

type Plans interface {
	CreateOrUpdate(ctx context.Context, subscriptionID, group, plan string, p PlanParameters) (*PlanRecord, error)
}

type WebApps interface {
	CreateOrUpdate(ctx context.Context, subscriptionID, group, app string, p WebAppParameters) (*WebAppRecord, error)
}

// Factory hands out the providers bound to one authenticated session and
// subscription.
type Factory interface {
	Providers(s credential.Session, subscriptionID string) (*Set, error)
}

type Set struct {
	Plans          Plans
	ResourceGroups ResourceGroups
	Resources      Resources
	WebApps        WebApps
}
