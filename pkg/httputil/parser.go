// Package httputil provides header helpers for Azure Resource Manager
// responses.
package httputil

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/giantswarm/microerror"
)

const (
	headerCorrelationRequestID = "x-ms-correlation-request-id"
	headerRequestID            = "x-ms-request-id"
	headerRetryAfter           = "Retry-After"
)

// ParseRetryAfter returns the point in time named by the Retry-After header of
// r. When several values are present the first parseable one wins. A nil
// response or a missing or unparseable header results in a parseError.
func ParseRetryAfter(r *http.Response) (time.Time, error) {
	if r == nil {
		return time.Time{}, microerror.Maskf(parseError, "nil response")
	}

	for _, v := range r.Header.Values(headerRetryAfter) {
		v = strings.TrimSpace(v)

		// <delay-seconds>
		i64, err := strconv.ParseInt(v, 10, 32)
		if err == nil && i64 > 0 {
			return time.Now().UTC().Add(time.Duration(i64) * time.Second), nil
		}

		// <http-date>
		t, err := http.ParseTime(v)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, microerror.Maskf(parseError, "parseable %s missing", headerRetryAfter)
}

// RequestID returns the ARM request ID of r, falling back to the correlation
// ID. It returns an empty string when neither header is set.
func RequestID(r *http.Response) string {
	if r == nil {
		return ""
	}

	if id := r.Header.Get(headerRequestID); id != "" {
		return id
	}

	return r.Header.Get(headerCorrelationRequestID)
}
