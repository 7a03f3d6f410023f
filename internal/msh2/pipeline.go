package msh2

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cmgg/qcreport/internal/record"
)

// Pipeline accumulates targeted MSH2 hotspot reports, one file per
// sample, deriving variant frequencies as each file is parsed.
type Pipeline struct {
	registry        *record.Registry
	sangerThreshold float64
	logger          *zap.Logger
}

// NewPipeline creates an empty MSH2 pipeline with the given Sanger
// confirmation threshold (percentage).
func NewPipeline(sangerThreshold float64) *Pipeline {
	return &Pipeline{
		registry:        record.NewRegistry(),
		sangerThreshold: sangerThreshold,
		logger:          zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and skip messages.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Ingest parses one hotspot report, derives the variant frequencies and
// merges the record into the registry. Files with too few lines are
// skipped with a warning; structural parse failures and frequency
// derivation failures abort the file and propagate.
func (p *Pipeline) Ingest(sample, text string) error {
	fields, err := Parse(text)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			p.logger.Warn("skipping MSH2 hotspot report",
				zap.String("sample", sample),
				zap.Error(err))
			return nil
		}
		return err
	}

	if err := DeriveFrequencies(fields, p.sangerThreshold); err != nil {
		return err
	}

	p.registry.Upsert(sample, fields)
	return nil
}

// Finalize applies the exclusion list and returns the registry. An empty
// result is not an error for this report type; it is only logged.
func (p *Pipeline) Finalize(ignoreSamples []string) *record.Registry {
	p.registry.Exclude(ignoreSamples)

	if p.registry.Len() == 0 {
		p.logger.Debug("no targeted MSH2 reports found")
	} else {
		p.logger.Debug("found targeted MSH2 reports", zap.Int("samples", p.registry.Len()))
	}

	return p.registry
}
