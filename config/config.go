package config // CLI configuration

import (
	"errors"
	"fmt"
	"strings"
)

// PipelineKind selects the analysis pipeline variant.
type PipelineKind string

const (
	PipelineDefault PipelineKind = "default"
	PipelineCustom  PipelineKind = "custom"
)

// PipelineKinds lists every accepted -pipeline value, in help order.
var PipelineKinds = []PipelineKind{PipelineDefault, PipelineCustom}

func ParsePipelineKind(s string) (PipelineKind, error) {
	kind := PipelineKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range PipelineKinds {
		if kind == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid pipeline %q (choose from %s)", s, pipelineChoices())
}

func pipelineChoices() string {
	names := make([]string, len(PipelineKinds))
	for i, k := range PipelineKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Options carries everything a single trim-and-analyze run needs.
type Options struct {
	Input       string
	Output      string
	Pipeline    PipelineKind
	TrimLength  int // <= 0 disables trimming
	Verbose     bool
	CSV         bool
	Benchmark   bool
	Diagnostics bool
}

// Trimming reports whether reads will be truncated.
func (o Options) Trimming() bool {
	return o.TrimLength > 0
}

// Validate checks the required fields. An empty Pipeline is treated as default.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New("input file is required")
	}
	if o.Output == "" {
		return errors.New("output directory is required")
	}
	if o.Pipeline == "" {
		o.Pipeline = PipelineDefault
	}
	kind, err := ParsePipelineKind(string(o.Pipeline))
	if err != nil {
		return err
	}
	o.Pipeline = kind
	return nil
}
