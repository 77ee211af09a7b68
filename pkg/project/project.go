package project

var (
	description string = "The azure-webapp-provisioner creates an App Service web app monitored by Application Insights."
	gitSHA             = "n/a"
	name        string = "azure-webapp-provisioner"
	source      string = "https://github.com/giantswarm/azure-webapp-provisioner"
	version            = "0.1.0-dev"
)

func Description() string {
	return description
}

func GitSHA() string {
	return gitSHA
}

func Name() string {
	return name
}

func Source() string {
	return source
}

func Version() string {
	return version
}

// UserAgent is appended to every Azure API request so calls made by this
// binary can be told apart in the activity log.
func UserAgent() string {
	return name + "/" + version
}
