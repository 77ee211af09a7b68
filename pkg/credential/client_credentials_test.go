package credential

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/micrologger/microloggertest"
)

func newTokenServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/oauth2/token") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if status != http.StatusOK {
			fmt.Fprint(w, `{"error":"invalid_client","error_description":"bad secret"}`)
			return
		}

		now := time.Now().Unix()
		fmt.Fprintf(w, `{"access_token":"token","token_type":"Bearer","expires_in":"3600","expires_on":"%d","not_before":"%d","resource":"https://management.azure.com/"}`, now+3600, now)
	}))
}

func testEnvironment(adEndpoint string) azure.Environment {
	env := azure.PublicCloud
	env.ActiveDirectoryEndpoint = adEndpoint + "/"
	return env
}

func Test_ClientCredentialsProvider_Authenticate(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		tenantID     string
		errorMatcher func(error) bool
	}{
		{
			name:     "case 0: token issued",
			status:   http.StatusOK,
			tenantID: "t1",
		},
		{
			name:         "case 1: token endpoint rejects the client",
			status:       http.StatusUnauthorized,
			tenantID:     "t1",
			errorMatcher: IsAuth,
		},
		{
			name:         "case 2: empty tenant",
			status:       http.StatusOK,
			tenantID:     "",
			errorMatcher: IsInvalidConfig,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			server := newTokenServer(t, tc.status)
			defer server.Close()

			p, err := NewClientCredentialsProvider(ClientCredentialsConfig{
				Logger:       microloggertest.New(),
				ClientID:     "client",
				ClientSecret: "secret",
				Environment:  testEnvironment(server.URL),
			})
			if err != nil {
				t.Fatal(err)
			}

			s, err := p.Authenticate(context.Background(), tc.tenantID)

			switch {
			case err == nil && tc.errorMatcher == nil:
				if s.Authorizer == nil {
					t.Fatal("expected authorizer")
				}
				if s.TenantID != tc.tenantID {
					t.Fatalf("expected tenant %q got %q", tc.tenantID, s.TenantID)
				}
			case err != nil && tc.errorMatcher == nil:
				t.Fatalf("error == %#v, want nil", err)
			case err == nil && tc.errorMatcher != nil:
				t.Fatalf("error == nil, want non-nil")
			case !tc.errorMatcher(err):
				t.Fatalf("error == %#v, want matching", err)
			}
		})
	}
}

func Test_DeviceFlowProvider_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_request"}`)
	}))
	defer server.Close()

	p, err := NewDeviceFlowProvider(DeviceFlowConfig{
		Logger:      microloggertest.New(),
		Environment: testEnvironment(server.URL),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Authenticate(context.Background(), "t1")
	if !IsAuth(err) {
		t.Fatalf("expected authError got %#v", err)
	}
}

func Test_EnvironmentFromName(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expected     string
		errorMatcher func(error) bool
	}{
		{
			name:     "case 0: empty name falls back to public cloud",
			input:    "",
			expected: azure.PublicCloud.Name,
		},
		{
			name:     "case 1: china cloud",
			input:    "AzureChinaCloud",
			expected: azure.ChinaCloud.Name,
		},
		{
			name:         "case 2: unknown cloud",
			input:        "MarsCloud",
			errorMatcher: IsInvalidConfig,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			env, err := EnvironmentFromName(tc.input)

			switch {
			case err == nil && tc.errorMatcher == nil:
				if env.Name != tc.expected {
					t.Fatalf("expected %q got %q", tc.expected, env.Name)
				}
			case err != nil && tc.errorMatcher == nil:
				t.Fatalf("error == %#v, want nil", err)
			case err == nil && tc.errorMatcher != nil:
				t.Fatalf("error == nil, want non-nil")
			case !tc.errorMatcher(err):
				t.Fatalf("error == %#v, want matching", err)
			}
		})
	}
}
