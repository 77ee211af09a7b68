package senddecorator

import (
	"errors"

	"github.com/giantswarm/microerror"
)

var tooManyRequestsError = &microerror.Error{
	Kind: "tooManyRequestsError",
}

// IsTooManyRequests asserts tooManyRequestsError, also when autorest wrapped
// it into an autorest.DetailedError.
func IsTooManyRequests(err error) bool {
	return errors.Is(err, tooManyRequestsError)
}
