package pipeline

import (
	"fmt"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
)

// Field names one slot of Context.
type Field string

const (
	FieldSession       Field = "session"
	FieldResourceGroup Field = "resourceGroup"
	FieldComponent     Field = "monitoringComponent"
	FieldPlan          Field = "hostingPlan"
	FieldWebApp        Field = "webApp"
	FieldExtension     Field = "monitoringExtension"
)

const (
	instrumentationKeyProperty = "InstrumentationKey"
)

// Session is the authenticated part of a provisioning run.
type Session struct {
	Credential credential.Session
	Providers  *provider.Set
}

// Context accumulates the results of a provisioning run. A field is set if
// and only if the step producing it completed. Steps receive a copy and
// return a copy with their field set; the Runner copies nothing else back.
type Context struct {
	Session       *Session
	ResourceGroup *provider.ResourceGroupRecord
	Component     *provider.ResourceRecord
	Plan          *provider.PlanRecord
	WebApp        *provider.WebAppRecord
	Extension     *provider.ResourceRecord
}

// Has reports whether f is populated.
func (c Context) Has(f Field) bool {
	switch f {
	case FieldSession:
		return c.Session != nil && c.Session.Providers != nil
	case FieldResourceGroup:
		return c.ResourceGroup != nil
	case FieldComponent:
		return c.Component != nil
	case FieldPlan:
		return c.Plan != nil
	case FieldWebApp:
		return c.WebApp != nil
	case FieldExtension:
		return c.Extension != nil
	default:
		panic(fmt.Sprintf("unknown context field %q", f))
	}
}

// ID returns the resource ID stored in f, or an empty string when f is not
// populated or holds no resource.
func (c Context) ID(f Field) string {
	if f == FieldSession || !c.Has(f) {
		return ""
	}

	switch f {
	case FieldResourceGroup:
		return c.ResourceGroup.ID
	case FieldComponent:
		return c.Component.ID
	case FieldPlan:
		return c.Plan.ID
	case FieldWebApp:
		return c.WebApp.ID
	default:
		return c.Extension.ID
	}
}

// InstrumentationKey returns the key of the monitoring component.
func (c Context) InstrumentationKey() string {
	k, _ := c.Component.StringProperty(instrumentationKeyProperty)
	return k
}

// commit returns c with f taken over from next.
func (c Context) commit(f Field, next Context) Context {
	switch f {
	case FieldSession:
		c.Session = next.Session
	case FieldResourceGroup:
		c.ResourceGroup = next.ResourceGroup
	case FieldComponent:
		c.Component = next.Component
	case FieldPlan:
		c.Plan = next.Plan
	case FieldWebApp:
		c.WebApp = next.WebApp
	case FieldExtension:
		c.Extension = next.Extension
	default:
		panic(fmt.Sprintf("unknown context field %q", f))
	}

	return c
}
