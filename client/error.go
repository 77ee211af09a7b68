package client

import (
	"errors"

	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"
)

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var subscriptionMismatchError = &microerror.Error{
	Kind: "subscriptionMismatchError",
}

// IsSubscriptionMismatch asserts subscriptionMismatchError.
func IsSubscriptionMismatch(err error) bool {
	return microerror.Cause(err) == subscriptionMismatchError
}

// IsNotFound asserts a 404 response of the Azure API, e.g. when the parent
// of a nested resource does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var dErr autorest.DetailedError
	if errors.As(err, &dErr) {
		if dErr.StatusCode == 404 {
			return true
		}
		if ResponseWasNotFound(autorest.Response{Response: dErr.Response}) {
			return true
		}
	}

	return false
}
