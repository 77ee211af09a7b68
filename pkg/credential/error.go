package credential

import (
	"github.com/giantswarm/microerror"
)

var authError = &microerror.Error{
	Kind: "authError",
}

// IsAuth asserts authError.
func IsAuth(err error) bool {
	return microerror.Cause(err) == authError
}

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}
