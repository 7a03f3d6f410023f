// Package msh2 implements the targeted MSH2 hotspot pipeline: it parses
// per-sample variant read-count reports for the NM_000251.3 c.942+2/+3
// hotspot positions and derives variant allele frequencies.
package msh2

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmgg/qcreport/internal/record"
)

// KeyWildType is the wild-type read-count field.
const KeyWildType = "MSH2_c.942+3_wt"

// VariantKeys are the four hotspot variant fields, in display order.
var VariantKeys = []string{
	"MSH2_c.942+3A>T",
	"MSH2_c.942+2T>A",
	"MSH2_c.942+2T>C",
	"MSH2_c.942+2T>G",
}

// ErrInsufficientData is returned for files with too few lines to hold a
// count row. Callers are expected to skip the file, not abort.
var ErrInsufficientData = errors.New("not enough lines to parse MSH2 hotspot variant counts")

// ParseError reports a structural problem in a hotspot report. Unlike
// ErrInsufficientData it is a hard failure.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("msh2 parse error at line %d: %s", e.Line, e.Message)
}

// Parse extracts columns 2-6 of the header line (line 3) and count line
// (line 4) of one hotspot report (space-separated; the first two lines
// are an uninterpreted preamble and the first column is the sample
// identifier). All counts are coerced to integers. A missing wild-type
// column or a non-integer count is a hard error; a file with fewer than
// three lines yields ErrInsufficientData instead.
func Parse(text string) (record.Fields, error) {
	lines := splitLines(text)
	if len(lines) < 3 {
		return nil, ErrInsufficientData
	}
	if len(lines) < 4 {
		return nil, &ParseError{Line: 4, Message: "count line missing"}
	}

	headers := window(strings.Split(strings.TrimSpace(lines[2]), " "))
	values := window(strings.Split(strings.TrimSpace(lines[3]), " "))

	fields := record.Fields{}
	for i, key := range headers {
		if i >= len(values) {
			break
		}
		count, err := strconv.Atoi(values[i])
		if err != nil {
			return nil, &ParseError{
				Line:    4,
				Message: fmt.Sprintf("count %q for %s is not an integer", values[i], key),
			}
		}
		fields[key] = count
	}

	if _, ok := fields[KeyWildType]; !ok {
		return nil, &ParseError{
			Line:    3,
			Message: fmt.Sprintf("wild type column %s not found", KeyWildType),
		}
	}

	return fields, nil
}

// window returns columns 2-6 (1-indexed) of a split line, tolerating
// shorter lines.
func window(cols []string) []string {
	if len(cols) <= 1 {
		return nil
	}
	end := 6
	if len(cols) < end {
		end = len(cols)
	}
	return cols[1:end]
}

// splitLines splits report text into lines, ignoring a trailing newline.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
