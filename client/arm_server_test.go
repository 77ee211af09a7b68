package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
)

type armRequest struct {
	Method     string
	Path       string
	APIVersion string
	UserAgent  string
	Body       map[string]interface{}
}

// armServer is a minimal resource manager. PUT upserts the request body
// under the lower cased request path, GET returns it. Nested resources
// require their parent and every resource requires its resource group.
type armServer struct {
	mutex     sync.Mutex
	failures  map[string]int
	requests  []armRequest
	resources map[string]map[string]interface{}
}

func newARMServer(t *testing.T) (*armServer, *httptest.Server) {
	t.Helper()

	s := &armServer{
		failures:  map[string]int{},
		resources: map[string]map[string]interface{}{},
	}
	server := httptest.NewServer(s)
	t.Cleanup(server.Close)

	return s, server
}

func testSession(server *httptest.Server) credential.Session {
	env := azure.PublicCloud
	env.ResourceManagerEndpoint = server.URL

	return credential.Session{
		Authorizer:  autorest.NullAuthorizer{},
		Environment: env,
		TenantID:    "t1",
	}
}

// fail makes requests for path answer with status.
func (s *armServer) fail(path string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.failures[strings.ToLower(path)] = status
}

func (s *armServer) puts() []armRequest {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var puts []armRequest
	for _, r := range s.requests {
		if r.Method == http.MethodPut {
			puts = append(puts, r)
		}
	}

	return puts
}

func (s *armServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := strings.ToLower(r.URL.Path)

	var body map[string]interface{}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	s.requests = append(s.requests, armRequest{
		Method:     r.Method,
		Path:       r.URL.Path,
		APIVersion: r.URL.Query().Get("api-version"),
		UserAgent:  r.UserAgent(),
		Body:       body,
	})

	if status, ok := s.failures[key]; ok {
		writeARMError(w, status, "Failed", "injected failure")
		return
	}

	switch r.Method {
	case http.MethodGet:
		stored, ok := s.resources[key]
		if !ok {
			writeARMError(w, http.StatusNotFound, "ResourceNotFound", "resource not found")
			return
		}
		writeJSON(w, http.StatusOK, stored)

	case http.MethodPut:
		segments := strings.Split(strings.Trim(key, "/"), "/")

		// /subscriptions/{s}/resourcegroups/{g}/providers/{ns}/{type}/{name}/...
		if len(segments) > 4 {
			group := "/" + strings.Join(segments[:4], "/")
			if _, ok := s.resources[group]; !ok {
				writeARMError(w, http.StatusNotFound, "ResourceGroupNotFound", "resource group not found")
				return
			}
		}
		if len(segments) > 8 {
			parent := "/" + strings.Join(segments[:len(segments)-2], "/")
			if _, ok := s.resources[parent]; !ok {
				writeARMError(w, http.StatusNotFound, "ParentResourceNotFound", "parent resource not found")
				return
			}
		}

		status := http.StatusCreated
		existing, exists := s.resources[key]
		if exists {
			status = http.StatusOK
		}

		if body == nil {
			body = map[string]interface{}{}
		}

		originalSegments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		name := originalSegments[len(originalSegments)-1]

		body["id"] = r.URL.Path
		body["name"] = name

		props, _ := body["properties"].(map[string]interface{})
		if props == nil {
			props = map[string]interface{}{}
		}
		props["provisioningState"] = "Succeeded"

		kind := segments[len(segments)-2]
		switch kind {
		case "components":
			props["InstrumentationKey"] = "ikey-" + name
			if exists {
				props["InstrumentationKey"] = existing["properties"].(map[string]interface{})["InstrumentationKey"]
			}
		case "sites":
			props["defaultHostName"] = name + ".azurewebsites.net"
			props["state"] = "Running"
		}
		body["properties"] = props

		s.resources[key] = body
		writeJSON(w, status, body)

	default:
		writeARMError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", r.Method)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("x-ms-request-id", "req-1")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeARMError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":{"code":%q,"message":%q}}`, code, message)
}
