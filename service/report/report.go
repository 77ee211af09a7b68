// Package report renders the outcome of a provisioning run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/giantswarm/microerror"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/azure-webapp-provisioner/service/pipeline"
)

const (
	FormatJSON = "json"
	FormatText = "text"
	FormatYAML = "yaml"
)

// Formats lists the output formats Write understands.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

type Resource struct {
	Step     pipeline.StepName `json:"step"`
	Kind     string            `json:"kind"`
	ID       string            `json:"id,omitempty"`
	Duration string            `json:"duration,omitempty"`
}

type Report struct {
	Succeeded          bool       `json:"succeeded"`
	FailedStep         string     `json:"failedStep,omitempty"`
	Error              string     `json:"error,omitempty"`
	InstrumentationKey string     `json:"instrumentationKey,omitempty"`
	DefaultHostName    string     `json:"defaultHostName,omitempty"`
	Resources          []Resource `json:"resources"`
}

var fields = []struct {
	step  pipeline.StepName
	field pipeline.Field
}{
	{pipeline.StepResourceGroup, pipeline.FieldResourceGroup},
	{pipeline.StepComponent, pipeline.FieldComponent},
	{pipeline.StepPlan, pipeline.FieldPlan},
	{pipeline.StepWebApp, pipeline.FieldWebApp},
	{pipeline.StepExtension, pipeline.FieldExtension},
}

// New builds a report from the result of pipeline.Runner.Run. When runErr
// carries a partial context, the resources created before the failure are
// listed.
func New(pc pipeline.Context, durations map[pipeline.StepName]time.Duration, runErr error) Report {
	r := Report{
		Succeeded: runErr == nil,
	}

	if runErr != nil {
		r.Error = runErr.Error()

		if step, ok := pipeline.FailedStep(runErr); ok {
			r.FailedStep = string(step)
		}
		if partial, ok := pipeline.PartialContext(runErr); ok {
			pc = partial
		}
	}

	for _, f := range fields {
		res := Resource{
			Step: f.step,
			Kind: f.step.Label(),
			ID:   pc.ID(f.field),
		}
		if d, ok := durations[f.step]; ok {
			res.Duration = d.Round(time.Millisecond).String()
		}

		r.Resources = append(r.Resources, res)
	}

	r.InstrumentationKey = pc.InstrumentationKey()
	if pc.WebApp != nil {
		r.DefaultHostName = pc.WebApp.DefaultHostName
	}

	return r
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return microerror.Mask(err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		if err != nil {
			return microerror.Mask(err)
		}
	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return microerror.Mask(err)
		}
		_, err = w.Write(b)
		if err != nil {
			return microerror.Mask(err)
		}
	case FormatText, "":
		err := writeText(w, r)
		if err != nil {
			return microerror.Mask(err)
		}
	default:
		return microerror.Maskf(unknownFormatError, "%#q, expected one of %v", format, Formats)
	}

	return nil
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "STEP\tRESOURCE\tDURATION")
	for _, res := range r.Resources {
		id := res.ID
		if id == "" {
			id = "-"
		}
		d := res.Duration
		if d == "" {
			d = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Step, id, d)
	}

	err := tw.Flush()
	if err != nil {
		return microerror.Mask(err)
	}

	if r.DefaultHostName != "" {
		fmt.Fprintf(w, "\nhttps://%s\n", r.DefaultHostName)
	}
	if !r.Succeeded {
		fmt.Fprintf(w, "\nprovisioning failed at step %s: %s\n", r.FailedStep, r.Error)
	}

	return nil
}
