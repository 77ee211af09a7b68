// Package key derives the names and identifiers of every resource the
// provisioning run creates. All functions are pure.
package key

import (
	"fmt"

	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

const (
	// ExtensionID is the site extension that attaches the Application
	// Insights agent to a web app.
	ExtensionID = "Microsoft.ApplicationInsights.AzureWebSites"

	// HiddenLinkValue is the value of the tag linking a monitoring component
	// to its web app.
	HiddenLinkValue = "Resource"

	PlanCapacity int32 = 1
	PlanTier           = "F1"

	WebAppKind = "web"

	extensionSuffix = "-ai"
	planSuffix      = "-asp"
)

// Descriptors holds every derived value a provisioning run needs. It is
// computed once, before any remote call.
type Descriptors struct {
	ComponentName string
	ExtensionID   string
	// ExtensionName is the label of the monitoring extension in logs and the
	// final report. The remote call always uses ExtensionID.
	ExtensionName    string
	HiddenLinkTag    string
	PlanCapacity     int32
	PlanName         string
	PlanTier         string
	WebAppResourceID string
}

func NewDescriptors(p setting.Parameters) Descriptors {
	webAppID := WebAppResourceID(p.SubscriptionID, p.ResourceGroup, p.AppName)

	d := Descriptors{
		ComponentName:    ComponentName(p.AppName),
		ExtensionID:      ExtensionID,
		ExtensionName:    ExtensionName(p.AppName),
		HiddenLinkTag:    HiddenLinkTag(webAppID),
		PlanCapacity:     PlanCapacity,
		PlanName:         PlanName(p.AppName),
		PlanTier:         PlanTier,
		WebAppResourceID: webAppID,
	}

	return d
}

func ComponentName(appName string) string {
	return appName
}

func ExtensionName(appName string) string {
	return appName + extensionSuffix
}

// HiddenLinkTag is the tag key the portal uses to show a monitoring
// component on the blade of the resource it monitors.
func HiddenLinkTag(resourceID string) string {
	return fmt.Sprintf("hidden-link:%s", resourceID)
}

func PlanName(appName string) string {
	return appName + planSuffix
}

func ResourceGroupID(subscriptionID, group string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, group)
}

func WebAppResourceID(subscriptionID, group, appName string) string {
	return fmt.Sprintf("%s/providers/Microsoft.Web/sites/%s", ResourceGroupID(subscriptionID, group), appName)
}
