package trim_analyzer

import (
	"fmt"

	"ecoscope_go/config"
	common "ecoscope_go/utils"
)

// Pipeline transforms one record before it is written and counted.
type Pipeline interface {
	Name() string
	Apply(rec FastqRecord) FastqRecord
}

// DefaultPipeline truncates sequence and quality to TrimLength when it is positive.
type DefaultPipeline struct {
	TrimLength int
}

func (DefaultPipeline) Name() string { return string(config.PipelineDefault) }

func (p DefaultPipeline) Apply(rec FastqRecord) FastqRecord {
	rec.Sequence = common.Truncate(rec.Sequence, p.TrimLength)
	rec.Quality = common.Truncate(rec.Quality, p.TrimLength)
	return rec
}

// CustomPipeline is selectable from the CLI but has no behaviour of its own yet;
// it runs the default trimming.
type CustomPipeline struct {
	DefaultPipeline
}

func (CustomPipeline) Name() string { return string(config.PipelineCustom) }

func NewPipeline(kind config.PipelineKind, trimLength int) (Pipeline, error) {
	switch kind {
	case config.PipelineDefault, "":
		return DefaultPipeline{TrimLength: trimLength}, nil
	case config.PipelineCustom:
		return CustomPipeline{DefaultPipeline{TrimLength: trimLength}}, nil
	default:
		return nil, fmt.Errorf("unknown pipeline: %s", kind)
	}
}
