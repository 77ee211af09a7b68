package azure

type Azure struct {
	AppName        string
	ClientID       string
	ClientSecret   string
	Cloud          string
	Location       string
	PartnerID      string
	ResourceGroup  string
	SubscriptionID string
	TenantID       string
}
