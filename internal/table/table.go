// Package table defines the per-field display metadata each pipeline
// exposes alongside its data. The metadata is a presentation contract
// for downstream renderers; nothing in this repository renders it.
package table

// Condition matches a single cell value. Nil / empty members are not
// consulted.
type Condition struct {
	Eq          *float64
	Lt          *float64
	StrEq       string
	StrContains string
}

// Rule pairs a named set of match conditions with the colour applied
// when any of them matches.
type Rule struct {
	Name       string
	Conditions []Condition
	Colour     string
}

// Column describes how one record field is displayed.
type Column struct {
	Key         string
	Title       string
	Description string
	Format      string // number format, e.g. "{:.4f}"
	Scale       string // colour scale name; empty disables the scale
	Min         *float64
	Max         *float64
	Rules       []Rule
}

// Config carries table-level display settings.
type Config struct {
	ID        string
	Title     string
	Namespace string
	SortRows  bool
	NoViolin  bool
}

// Float returns a pointer to v, for optional numeric metadata.
func Float(v float64) *float64 {
	return &v
}
