package provider

import (
	"fmt"
	"strings"
)

type GroupParameters struct {
	Location string
	Tags     map[string]string
}

type ResourceGroupRecord struct {
	ID                string
	Name              string
	Location          string
	ProvisioningState string
}

// GenericResourceID addresses a resource below a resource group. Parent is
// the path of the enclosing resource, e.g. sites/myapp, and is empty for top
// level resources.
type GenericResourceID struct {
	Namespace string
	Parent    string
	Type      string
	Name      string
}

// Path renders the resource path below the providers segment.
func (id GenericResourceID) Path() string {
	parts := []string{id.Namespace}
	if id.Parent != "" {
		parts = append(parts, id.Parent)
	}
	parts = append(parts, id.Type, id.Name)

	return strings.Join(parts, "/")
}

func (id GenericResourceID) String() string {
	return id.Path()
}

// ResourceID renders the full resource manager ID of id.
func (id GenericResourceID) ResourceID(subscriptionID, group string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s", subscriptionID, group, id.Path())
}

// Envelope is the request body of a generic resource.
type Envelope struct {
	Location   string
	Properties map[string]interface{}
	Tags       map[string]string
}

type ResourceRecord struct {
	ID         string
	Name       string
	Type       string
	Location   string
	Properties map[string]interface{}
}

// StringProperty returns the named property when it is a non-empty string.
func (r *ResourceRecord) StringProperty(name string) (string, bool) {
	if r == nil || r.Properties == nil {
		return "", false
	}

	s, ok := r.Properties[name].(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

type PlanParameters struct {
	Location string
	SkuName  string
	Capacity int32
}

type PlanRecord struct {
	ID       string
	Name     string
	Location string
	SkuName  string
}

type AppSetting struct {
	Name  string
	Value string
}

type WebAppParameters struct {
	Location     string
	Kind         string
	ServerFarmID string
	AppSettings  []AppSetting
}

type WebAppRecord struct {
	ID              string
	Name            string
	DefaultHostName string
	State           string
}
