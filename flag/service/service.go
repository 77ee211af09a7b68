package service

import (
	"github.com/giantswarm/azure-webapp-provisioner/flag/service/azure"
	"github.com/giantswarm/azure-webapp-provisioner/flag/service/metrics"
)

type Service struct {
	Azure   azure.Azure
	Metrics metrics.Metrics
	Output  string
	Timeout string
}
