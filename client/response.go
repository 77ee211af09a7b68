package client

import (
	"net/http"

	"github.com/Azure/go-autorest/autorest"
)

// ResponseWasNotFound reports whether resp carries a 404 status.
func ResponseWasNotFound(resp autorest.Response) bool {
	return resp.Response != nil && resp.StatusCode == http.StatusNotFound
}
