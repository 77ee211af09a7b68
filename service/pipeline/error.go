package pipeline

import (
	"errors"
	"fmt"

	"github.com/giantswarm/microerror"
)

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var missingInstrumentationKeyError = &microerror.Error{
	Kind: "missingInstrumentationKeyError",
}

// IsMissingInstrumentationKey asserts missingInstrumentationKeyError.
func IsMissingInstrumentationKey(err error) bool {
	return errors.Is(err, missingInstrumentationKeyError)
}

var missingResultError = &microerror.Error{
	Kind: "missingResultError",
}

// IsMissingResult asserts missingResultError.
func IsMissingResult(err error) bool {
	return errors.Is(err, missingResultError)
}

// StepError is the failure of a single step. Cause is the provider error
// as it was returned.
type StepError struct {
	Step  StepName
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %s", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// PipelineError ends a provisioning run. Context holds whatever the steps
// before Step created. Nothing is rolled back.
type PipelineError struct {
	Step    StepName
	Err     *StepError
	Context Context
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("provisioning stopped at step %s: %s", e.Step, e.Err.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step err originates from.
func FailedStep(err error) (StepName, bool) {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Step, true
	}

	var sErr *StepError
	if errors.As(err, &sErr) {
		return sErr.Step, true
	}

	return "", false
}

// PartialContext returns the context a failed run left behind.
func PartialContext(err error) (Context, bool) {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Context, true
	}

	return Context{}, false
}

func newStepError(step StepName, err error) *StepError {
	var sErr *StepError
	if errors.As(err, &sErr) {
		return sErr
	}

	return &StepError{Step: step, Cause: err}
}
