package client

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/service/collector"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
)

const (
	cacheHitLogKey       = "cacheHit"
	logLevelLogKey       = "level"
	logLevelDebug        = "debug"
	messageLogKey        = "message"
	subscriptionIDLogKey = "subscriptionID"
	tenantIDLogKey       = "tenantID"

	DefaultCacheDuration = 30 * time.Minute
)

type FactoryConfig struct {
	Logger           micrologger.Logger
	MetricsCollector collector.AzureAPIMetrics

	CacheDuration time.Duration
	PartnerID     string
}

// Factory creates the provider set of a tenant and subscription. Created
// sets are cached, so clients of one subscription share their backpressure
// gate across provisioning runs.
type Factory struct {
	logger           micrologger.Logger
	metricsCollector collector.AzureAPIMetrics
	mutex            sync.Mutex
	partnerID        string

	// map [tenantID/subscriptionID] -> *provider.Set
	cachedSets *gocache.Cache
}

func NewFactory(config FactoryConfig) (*Factory, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.MetricsCollector == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.MetricsCollector must not be empty", config)
	}

	if config.CacheDuration == 0 {
		config.CacheDuration = DefaultCacheDuration
	}
	if config.CacheDuration < 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.CacheDuration must not be negative", config)
	}

	f := &Factory{
		logger:           config.Logger,
		metricsCollector: config.MetricsCollector,
		partnerID:        config.PartnerID,

		cachedSets: gocache.New(config.CacheDuration, 2*config.CacheDuration),
	}

	f.cachedSets.OnEvicted(func(k string, _ interface{}) {
		f.onEvicted(k)
	})

	return f, nil
}

// Providers returns the provider set of the session tenant and the given
// subscription, creating it on first use.
func (f *Factory) Providers(s credential.Session, subscriptionID string) (*provider.Set, error) {
	if s.Authorizer == nil {
		return nil, microerror.Maskf(invalidConfigError, "session must carry an authorizer")
	}
	if subscriptionID == "" {
		return nil, microerror.Maskf(invalidConfigError, "subscription ID must not be empty")
	}

	l := f.logger.With(
		logLevelLogKey, logLevelDebug,
		messageLogKey, "get provider set",
		tenantIDLogKey, s.TenantID,
		subscriptionIDLogKey, subscriptionID)

	k := getSetKey(s.TenantID, subscriptionID)

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if cached, ok := f.cachedSets.Get(k); ok {
		l.Log(cacheHitLogKey, true)
		f.cachedSets.SetDefault(k, cached)
		return cached.(*provider.Set), nil
	}

	l.Log(cacheHitLogKey, false)

	c := AzureClientSetConfig{
		Authorizer:       s.Authorizer,
		Logger:           f.logger,
		MetricsCollector: f.metricsCollector,

		BaseURI:        s.Environment.ResourceManagerEndpoint,
		PartnerID:      f.partnerID,
		SubscriptionID: subscriptionID,
	}

	clientSet, err := NewAzureClientSet(c)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	set := NewProviderSet(clientSet)
	f.cachedSets.SetDefault(k, set)

	return set, nil
}

func getSetKey(tenantID, subscriptionID string) string {
	return fmt.Sprintf("%s/%s", tenantID, subscriptionID)
}

func getSetKeyParts(k string) (tenantID, subscriptionID string) {
	parts := strings.SplitN(k, "/", 2)
	if len(parts) != 2 {
		// for logging only
		return "unknown", "unknown"
	}

	return parts[0], parts[1]
}

func (f *Factory) onEvicted(k string) {
	tenantID, subscriptionID := getSetKeyParts(k)
	f.logger.Log(
		logLevelLogKey, logLevelDebug,
		messageLogKey, "provider set evicted",
		tenantIDLogKey, tenantID,
		subscriptionIDLogKey, subscriptionID)
}
