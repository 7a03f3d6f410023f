package sexpred

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/cmgg/qcreport/internal/record"
)

// Subtype identifies which prediction method produced a report file,
// inferred by the caller from the file naming convention.
type Subtype string

// The three SampleGender report subtypes.
const (
	SubtypeXY   Subtype = "xy"
	SubtypeHetX Subtype = "hetx"
	SubtypeSRY  Subtype = "sry"
)

// Suffix returns the sample-name suffix used by the naming convention
// for this subtype, e.g. "_xy".
func (s Subtype) Suffix() string {
	return "_" + string(s)
}

// ErrNothingToReport signals that no samples remain after parsing and
// exclusion, so the whole report section should be suppressed rather
// than rendered empty.
var ErrNothingToReport = errors.New("no sample gender reports to show")

// Pipeline accumulates SampleGender reports across files and derives the
// per-sample consensus after ingestion completes.
type Pipeline struct {
	registry *record.Registry
	logger   *zap.Logger
}

// NewPipeline creates an empty sex-prediction pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		registry: record.NewRegistry(),
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and skip messages.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Ingest parses one report file's text and merges the extracted fields
// into the sample's record. The subtype suffix is stripped from the
// sample name before the registry lookup, so the three method files of
// one sample land in the same record. A file with no data rows
// contributes nothing and is only logged.
func (p *Pipeline) Ingest(sample string, subtype Subtype, text string) {
	sample = strings.TrimSuffix(sample, subtype.Suffix())

	parsed := Parse(text)
	if len(parsed) == 0 {
		p.logger.Warn("sample gender report has no data rows",
			zap.String("sample", sample),
			zap.String("subtype", string(subtype)))
		return
	}

	p.registry.Upsert(sample, parsed)
}

// Finalize applies the exclusion list, then derives certainty and
// calc_gender for every remaining sample and returns the registry.
// Returns ErrNothingToReport when no samples survive.
func (p *Pipeline) Finalize(ignoreSamples []string) (*record.Registry, error) {
	p.registry.Exclude(ignoreSamples)

	if p.registry.Len() == 0 {
		return nil, ErrNothingToReport
	}

	p.logger.Info("found SampleGender reports", zap.Int("samples", p.registry.Len()))

	for _, sample := range p.registry.Samples() {
		rec, _ := p.registry.Get(sample)
		DeriveConsensus(rec)
	}

	return p.registry, nil
}
