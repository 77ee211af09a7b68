package senddecorator

import (
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/httputil"
)

// LoggingDecorator logs every request with its response status and the ARM
// request ID, which is what Azure support asks for when a call misbehaves.
func LoggingDecorator(name string, logger micrologger.Logger) autorest.SendDecorator {
	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := s.Do(r)

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}

			logger.LogCtx(r.Context(),
				"level", "debug",
				"message", "azure api call",
				"client", name,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"requestID", httputil.RequestID(resp),
			)

			return resp, err
		})
	}
}
