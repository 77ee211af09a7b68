package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-webapp-provisioner/pkg/credential"
	"github.com/giantswarm/azure-webapp-provisioner/service/key"
	"github.com/giantswarm/azure-webapp-provisioner/service/provider"
	"github.com/giantswarm/azure-webapp-provisioner/service/setting"
)

type Config struct {
	Credentials credential.Provider
	Factory     provider.Factory
	Logger      micrologger.Logger

	// OnTransition is called synchronously on every state change.
	OnTransition func(from, to State)
}

// Runner executes the provisioning steps one after another. A Runner is not
// meant to be used by concurrent Run calls.
type Runner struct {
	credentials  credential.Provider
	factory      provider.Factory
	logger       micrologger.Logger
	onTransition func(from, to State)

	steps []Step

	mutex     sync.Mutex
	state     State
	durations map[StepName]time.Duration
}

func New(config Config) (*Runner, error) {
	if config.Credentials == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials must not be empty", config)
	}
	if config.Factory == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Factory must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	r := &Runner{
		credentials:  config.Credentials,
		factory:      config.Factory,
		logger:       config.Logger,
		onTransition: config.OnTransition,

		steps: DefaultSteps(),

		state:     NotStarted,
		durations: map[StepName]time.Duration{},
	}

	return r, nil
}

// Run provisions all resources for p. On success the returned Context has
// every field set. A step failure returns a *PipelineError holding the
// partial context. Resources created before the failure are left in place.
func (r *Runner) Run(ctx context.Context, p setting.Parameters) (Context, error) {
	r.reset()

	err := p.Validate()
	if err != nil {
		r.transition(Failed)
		return Context{}, microerror.Mask(err)
	}

	d := key.NewDescriptors(p)

	var pc Context
	{
		r.transition(Authenticating)
		r.logger.Debugf(ctx, "authenticating against tenant %#q", p.TenantID)

		s, err := r.credentials.Authenticate(ctx, p.TenantID)
		if err != nil {
			r.transition(Failed)
			return Context{}, microerror.Mask(err)
		}

		set, err := r.factory.Providers(s, p.SubscriptionID)
		if err != nil {
			r.transition(Failed)
			return Context{}, microerror.Mask(err)
		}

		pc.Session = &Session{
			Credential: s,
			Providers:  set,
		}

		r.logger.Debugf(ctx, "authenticated against tenant %#q", p.TenantID)
	}

	for _, s := range r.steps {
		if err := ctx.Err(); err != nil {
			r.transition(Failed)
			pErr := &PipelineError{Step: s.Name(), Err: newStepError(s.Name(), err), Context: pc}
			return Context{}, pErr
		}

		for _, f := range s.Requires() {
			if !pc.Has(f) {
				panic(fmt.Sprintf("step %s requires context field %s which is not set", s.Name(), f))
			}
		}

		r.transition(stepState(s.Name()))

		r.logger.Debugf(ctx, "running step %#q", s.Name())

		start := time.Now()
		next, err := s.Run(ctx, pc, p, d)
		r.setDuration(s.Name(), time.Since(start))

		if err == nil && !next.Has(s.Provides()) {
			err = microerror.Maskf(missingResultError, "step %s did not set context field %s", s.Name(), s.Provides())
		}
		if err != nil {
			r.logger.LogCtx(ctx, "level", "error", "message", fmt.Sprintf("step %#q failed", s.Name()), "stack", microerror.JSON(err))
			r.transition(Failed)

			pErr := &PipelineError{
				Step:    s.Name(),
				Err:     newStepError(s.Name(), err),
				Context: pc,
			}

			return Context{}, pErr
		}

		pc = pc.commit(s.Provides(), next)

		r.logger.LogCtx(ctx, "level", "info", "message", fmt.Sprintf("%s created: %s", s.Name().Label(), pc.ID(s.Provides())))
	}

	r.transition(Completed)

	return pc, nil
}

// State returns the current state of the Runner.
func (r *Runner) State() State {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.state
}

// Durations returns how long each executed step took during the last run.
func (r *Runner) Durations() map[StepName]time.Duration {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	m := make(map[StepName]time.Duration, len(r.durations))
	for k, v := range r.durations {
		m[k] = v
	}

	return m
}

func (r *Runner) reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.state = NotStarted
	r.durations = map[StepName]time.Duration{}
}

func (r *Runner) setDuration(n StepName, d time.Duration) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.durations[n] = d
}

func (r *Runner) transition(to State) {
	r.mutex.Lock()
	from := r.state
	if !from.canTransitionTo(to) {
		r.mutex.Unlock()
		panic(fmt.Sprintf("invalid state transition from %s to %s", from, to))
	}
	r.state = to
	r.mutex.Unlock()

	if r.onTransition != nil {
		r.onTransition(from, to)
	}
}

func stepState(n StepName) State {
	s, ok := stepStates[n]
	if !ok {
		panic(fmt.Sprintf("unknown step %s", n))
	}

	return s
}
