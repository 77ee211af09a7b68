package setting

import (
	"strings"

	"github.com/giantswarm/microerror"
)

// Parameters are the inputs of one provisioning run. They are supplied once
// at startup and never change afterwards.
type Parameters struct {
	TenantID       string
	SubscriptionID string
	Location       string
	ResourceGroup  string
	AppName        string
}

// Validate fails with an invalidConfigError naming the first missing
// parameter. Values consisting only of white space count as missing.
func (p Parameters) Validate() error {
	fields := []struct {
		flag  string
		value string
	}{
		{flag: "tenant", value: p.TenantID},
		{flag: "subscription", value: p.SubscriptionID},
		{flag: "location", value: p.Location},
		{flag: "group", value: p.ResourceGroup},
		{flag: "appname", value: p.AppName},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return microerror.Maskf(invalidConfigError, "--%s must not be empty", f.flag)
		}
	}

	return nil
}
