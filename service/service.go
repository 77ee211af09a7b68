// Package service wires the provisioning pipeline from command line
// configuration.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-webapp-provisioner/client"
	"github.com/giantswarm/azure-webapp-provisioner/flag"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/project"
	"github.com/giantswarm/azure-webapp-provisioner/service/collector"
	"github.com/giantswarm/azure-webapp-provisioner/service/pipeline"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/report"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

// Config represents the configuration used to create a new service.
type Config struct {
	Logger micrologger.Logger

	Flag  *flag.Flag
	Viper *viper.Viper

	// CredentialProvider replaces the provider derived from the flags.
	CredentialProvider credential.Provider
	// ProviderFactory replaces the Azure backed factory.
	ProviderFactory provider.Factory
	// Stdout receives the report. It defaults to os.Stdout.
	Stdout io.Writer
}

type Service struct {
	logger micrologger.Logger

	output      string
	parameters  setting.Parameters
	pushgateway string
	registry    *prometheus.Registry
	runner      *pipeline.Runner
	stdout      io.Writer
	timeout     time.Duration
}

// New creates a new configured service object. Missing provisioning
// parameters are reported before anything else is set up.
func New(config Config) (*Service, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Flag == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Flag must not be empty", config)
	}
	if config.Viper == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Viper must not be empty", config)
	}

	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}

	var err error

	parameters := setting.Parameters{
		TenantID:       config.Viper.GetString(config.Flag.Service.Azure.TenantID),
		SubscriptionID: config.Viper.GetString(config.Flag.Service.Azure.SubscriptionID),
		Location:       config.Viper.GetString(config.Flag.Service.Azure.Location),
		ResourceGroup:  config.Viper.GetString(config.Flag.Service.Azure.ResourceGroup),
		AppName:        config.Viper.GetString(config.Flag.Service.Azure.AppName),
	}
	err = parameters.Validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	output := config.Viper.GetString(config.Flag.Service.Output)
	if output == "" {
		output = report.FormatText
	}
	if !isKnownFormat(output) {
		return nil, microerror.Maskf(invalidConfigError, "--%s must be one of %v", config.Flag.Service.Output, report.Formats)
	}

	var timeout time.Duration
	if s := config.Viper.GetString(config.Flag.Service.Timeout); s != "" {
		timeout, err = time.ParseDuration(s)
		if err != nil {
			return nil, microerror.Maskf(invalidConfigError, "--%s: %s", config.Flag.Service.Timeout, err)
		}
	}

	environment, err := credential.EnvironmentFromName(config.Viper.GetString(config.Flag.Service.Azure.Cloud))
	if err != nil {
		return nil, microerror.Mask(err)
	}

	credentials := config.CredentialProvider
	if credentials == nil {
		credentials, err = newCredentialProvider(config, environment)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var metricsCollector *collector.AzureAPIMetricsCollector
	{
		c := collector.Config{
			Logger: config.Logger,
		}

		metricsCollector, err = collector.NewAzureAPIMetricsCollector(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	registry := prometheus.NewRegistry()
	err = registry.Register(metricsCollector)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	factory := config.ProviderFactory
	if factory == nil {
		c := client.FactoryConfig{
			Logger:           config.Logger,
			MetricsCollector: metricsCollector,

			PartnerID: config.Viper.GetString(config.Flag.Service.Azure.PartnerID),
		}

		factory, err = client.NewFactory(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var runner *pipeline.Runner
	{
		c := pipeline.Config{
			Credentials: credentials,
			Factory:     factory,
			Logger:      config.Logger,

			OnTransition: func(from, to pipeline.State) {
				config.Logger.Log("level", "debug", "message", fmt.Sprintf("state changed from %s to %s", from, to))
			},
		}

		runner, err = pipeline.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	s := &Service{
		logger: config.Logger,

		output:      output,
		parameters:  parameters,
		pushgateway: config.Viper.GetString(config.Flag.Service.Metrics.Pushgateway),
		registry:    registry,
		runner:      runner,
		stdout:      config.Stdout,
		timeout:     timeout,
	}

	return s, nil
}

// Run provisions the configured resources once and writes the report. The
// report is written for failed runs too.
func (s *Service) Run(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	pc, runErr := s.runner.Run(ctx, s.parameters)

	if s.pushgateway != "" {
		err := s.pushMetrics(ctx)
		if err != nil {
			s.logger.LogCtx(ctx, "level", "warning", "message", "failed to push metrics", "stack", microerror.JSON(err))
		}
	}

	err := report.Write(s.stdout, report.New(pc, s.runner.Durations(), runErr), s.output)
	if err != nil {
		return microerror.Mask(err)
	}

	if runErr != nil {
		return microerror.Mask(runErr)
	}

	return nil
}

func (s *Service) pushMetrics(ctx context.Context) error {
	// A timed out run must still be able to report its metrics.
	if ctx.Err() != nil {
		ctx = context.Background()
	}

	err := push.New(s.pushgateway, project.Name()).
		Gatherer(s.registry).
		Grouping("subscription", s.parameters.SubscriptionID).
		PushContext(ctx)
	if err != nil {
		return microerror.Mask(err)
	}

	s.logger.Debugf(ctx, "pushed metrics to %#q", s.pushgateway)

	return nil
}

func newCredentialProvider(config Config, environment azure.Environment) (credential.Provider, error) {
	var err error

	var p credential.Provider
	if clientID := config.Viper.GetString(config.Flag.Service.Azure.ClientID); clientID != "" {
		c := credential.ClientCredentialsConfig{
			Logger: config.Logger,

			ClientID:     clientID,
			ClientSecret: config.Viper.GetString(config.Flag.Service.Azure.ClientSecret),
			Environment:  environment,
		}

		p, err = credential.NewClientCredentialsProvider(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	} else {
		c := credential.DeviceFlowConfig{
			Logger: config.Logger,

			Environment: environment,
		}

		p, err = credential.NewDeviceFlowProvider(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var cached *credential.CachingProvider
	{
		c := credential.CachingConfig{
			Logger:   config.Logger,
			Provider: p,
		}

		cached, err = credential.NewCachingProvider(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return cached, nil
}

func isKnownFormat(format string) bool {
	for _, f := range report.Formats {
		if f == format {
			return true
		}
	}

	return false
}
