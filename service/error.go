package service

import (
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError. It also matches missing
// provisioning parameters and unusable credential settings, so callers can
// treat every startup configuration problem the same way.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError || setting.IsInvalidConfig(err) || credential.IsInvalidConfig(err)
}
