package report

import "github.com/giantswarm/microerror"

var unknownFormatError = &microerror.Error{
	Kind: "unknownFormatError",
}

// IsUnknownFormat asserts unknownFormatError.
func IsUnknownFormat(err error) bool {
	return microerror.Cause(err) == unknownFormatError
}
