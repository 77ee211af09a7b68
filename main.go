package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-webapp-provisioner/flag"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/pkg/project"
	"github.com/giantswarm/azure-webapp-provisioner/service"
	"github.com/giantswarm/azure-webapp-provisioner/service/report"
)

const (
	envPrefix = "AZURE_WEBAPP_PROVISIONER"

	exitCodeFailure     = 1
	exitCodeInvalidArgs = 2
)

var (
	f *flag.Flag = flag.New()
)

func main() {
	err := mainError()
	if IsInvalidFlags(err) || service.IsInvalidConfig(err) {
		fmt.Fprintf(os.Stderr, "%s\n\n%s\n", err, usage())
		os.Exit(exitCodeInvalidArgs)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitCodeFailure)
	}
}

func mainError() error {
	var err error

	var logger micrologger.Logger
	{
		c := micrologger.Config{
			IOWriter: os.Stderr,
		}

		logger, err = micrologger.New(c)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rootCommand := &cobra.Command{
		Use:           project.Name(),
		Short:         project.Description(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := v.BindPFlags(cmd.Flags())
			if err != nil {
				return microerror.Mask(err)
			}

			var newService *service.Service
			{
				c := service.Config{
					Logger: logger,

					Flag:  f,
					Viper: v,
				}

				newService, err = service.New(c)
				if err != nil {
					return microerror.Mask(err)
				}
			}

			err = newService.Run(cmd.Context())
			if err != nil {
				return microerror.Mask(err)
			}

			return nil
		},
	}

	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return microerror.Maskf(invalidFlagsError, "%s", err)
	})

	flags := rootCommand.Flags()
	flags.SetNormalizeFunc(normalizeAliases)

	flags.String(f.Service.Azure.TenantID, "", "ID of the Active Directory tenant to sign in to.")
	flags.String(f.Service.Azure.SubscriptionID, "", "ID of the Azure subscription the resources are created in.")
	flags.String(f.Service.Azure.Location, "", "Azure region of all created resources, e.g. westus.")
	flags.String(f.Service.Azure.ResourceGroup, "", "Name of the resource group to create or update.")
	flags.String(f.Service.Azure.AppName, "", "Name of the web app. The hosting plan and monitoring names are derived from it.")
	flags.String(f.Service.Azure.ClientID, "", "ID of a service principal. When empty the device code sign in is used.")
	flags.String(f.Service.Azure.ClientSecret, "", "Secret of the service principal.")
	// The cloud environment identifier. Takes values from https://github.com/Azure/go-autorest/blob/ec5f4903f77ed9927ac95b19ab8e44ada64c1356/autorest/azure/environments.go#L13
	flags.String(f.Service.Azure.Cloud, credential.DefaultCloud, "Azure Cloud Environment identifier.")
	flags.String(f.Service.Azure.PartnerID, "", "Partner ID added to the user agent of every Azure API request.")
	flags.String(f.Service.Metrics.Pushgateway, "", "Prometheus pushgateway URL the Azure API metrics are pushed to after the run.")
	flags.String(f.Service.Output, report.FormatText, fmt.Sprintf("Report format, one of %v.", report.Formats))
	flags.String(f.Service.Timeout, "", "Maximum duration of the whole run, e.g. 10m. Unlimited when empty.")

	rootCommand.AddCommand(newVersionCommand())

	err = rootCommand.ExecuteContext(ctx)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

// aliases maps the short parameter names to the flag tree.
var aliases = map[string]string{
	"appname":      f.Service.Azure.AppName,
	"group":        f.Service.Azure.ResourceGroup,
	"location":     f.Service.Azure.Location,
	"subscription": f.Service.Azure.SubscriptionID,
	"tenant":       f.Service.Azure.TenantID,
}

func normalizeAliases(fs *pflag.FlagSet, name string) pflag.NormalizedName {
	if n, ok := aliases[name]; ok {
		name = n
	}

	return pflag.NormalizedName(name)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Description:    %s\n", project.Description())
			fmt.Fprintf(cmd.OutOrStdout(), "Git Commit:     %s\n", project.GitSHA())
			fmt.Fprintf(cmd.OutOrStdout(), "Name:           %s\n", project.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "Source:         %s\n", project.Source())
			fmt.Fprintf(cmd.OutOrStdout(), "Version:        %s\n", project.Version())
		},
	}
}

func usage() string {
	return fmt.Sprintf("usage: %s --tenant <tenant_id> --subscription <id> --location <region> --group <resource_group> --appname <webapp_name>", project.Name())
}
