package credential

import (
	"context"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultCacheDuration stays below the usual one hour access token
	// lifetime.
	DefaultCacheDuration = 45 * time.Minute
)

type CachingConfig struct {
	Logger   micrologger.Logger
	Provider Provider

	CacheDuration time.Duration
}

// CachingProvider remembers sessions per tenant so that repeated
// provisioning runs in one process only ask the user to sign in once.
type CachingProvider struct {
	logger   micrologger.Logger
	provider Provider

	mutex    sync.Mutex
	sessions *gocache.Cache
}

func NewCachingProvider(config CachingConfig) (*CachingProvider, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Provider == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Provider must not be empty", config)
	}

	if config.CacheDuration == 0 {
		config.CacheDuration = DefaultCacheDuration
	}
	if config.CacheDuration < 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.CacheDuration must not be negative", config)
	}

	p := &CachingProvider{
		logger:   config.Logger,
		provider: config.Provider,

		sessions: gocache.New(config.CacheDuration, 2*config.CacheDuration),
	}

	return p, nil
}

func (p *CachingProvider) Authenticate(ctx context.Context, tenantID string) (Session, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if cached, ok := p.sessions.Get(tenantID); ok {
		p.logger.LogCtx(ctx, "level", "debug", "message", "reusing session", "tenant", tenantID, "cacheHit", true)
		return cached.(Session), nil
	}

	s, err := p.provider.Authenticate(ctx, tenantID)
	if err != nil {
		return Session{}, microerror.Mask(err)
	}

	p.sessions.SetDefault(tenantID, s)
	p.logger.LogCtx(ctx, "level", "debug", "message", "cached session", "tenant", tenantID, "cacheHit", false)

	return s, nil
}

// Forget drops the cached session of the given tenant.
func (p *CachingProvider) Forget(tenantID string) {
	p.sessions.Delete(tenantID)
}
