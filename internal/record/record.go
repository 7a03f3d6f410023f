// Package record holds the per-sample record model shared by the report
// pipelines: a flat mapping of named fields plus a registry that merges
// fields for the same sample across multiple source files.
package record

import "path"

// NotAvailable is the sentinel stored for missing or unparseable values.
const NotAvailable = "N/A"

// Fields maps a report-specific field name to its value.
// Values are float64, int, or string (including the NotAvailable sentinel).
type Fields map[string]any

// Merge copies every field from other into f, overwriting existing
// fields. Last writer wins per field, not per record.
func (f Fields) Merge(other Fields) {
	for k, v := range other {
		f[k] = v
	}
}

// Registry accumulates per-sample field mappings across source files.
// Iteration order is the insertion order of first-seen sample names.
type Registry struct {
	order   []string
	records map[string]Fields
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Fields)}
}

// Upsert merges fields into the record for sample. An unseen sample is
// appended with a copy of fields; an existing record is overwritten
// field-wise.
func (r *Registry) Upsert(sample string, fields Fields) {
	rec, ok := r.records[sample]
	if !ok {
		rec = make(Fields, len(fields))
		r.records[sample] = rec
		r.order = append(r.order, sample)
	}
	rec.Merge(fields)
}

// Get returns the record for sample, if present.
func (r *Registry) Get(sample string) (Fields, bool) {
	rec, ok := r.records[sample]
	return rec, ok
}

// Samples returns the sample names in insertion order.
func (r *Registry) Samples() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of samples currently held.
func (r *Registry) Len() int {
	return len(r.order)
}

// Exclude removes every sample whose name matches one of the patterns.
// A pattern matches on exact equality or as a path.Match glob.
func (r *Registry) Exclude(patterns []string) {
	if len(patterns) == 0 {
		return
	}
	kept := r.order[:0]
	for _, sample := range r.order {
		if matchesAny(sample, patterns) {
			delete(r.records, sample)
			continue
		}
		kept = append(kept, sample)
	}
	r.order = kept
}

func matchesAny(sample string, patterns []string) bool {
	for _, p := range patterns {
		if p == sample {
			return true
		}
		if ok, err := path.Match(p, sample); err == nil && ok {
			return true
		}
	}
	return false
}
