package credential

import (
	"strings"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
)

const (
	// DefaultCloud is the environment used when none is configured.
	DefaultCloud = "AZUREPUBLICCLOUD"
)

// EnvironmentFromName resolves a cloud identifier such as AZUREPUBLICCLOUD or
// AzureChinaCloud. An empty name resolves to DefaultCloud.
func EnvironmentFromName(name string) (azure.Environment, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultCloud
	}

	env, err := azure.EnvironmentFromName(name)
	if err != nil {
		return azure.Environment{}, microerror.Maskf(invalidConfigError, "unknown cloud environment %#q", name)
	}

	return env, nil
}
