// Package sexpred implements the sample sex-prediction pipeline: it
// parses ngs-bits SampleGender report files, merges the three prediction
// methods per sample and derives a consensus call with a certainty.
package sexpred

import (
	"math"
	"strconv"
	"strings"

	"github.com/cmgg/qcreport/internal/record"
)

// Internal field keys for the three prediction methods and the derived
// consensus values.
const (
	KeyGenderXY   = "gender_xy"
	KeyGenderHetX = "gender_hetx"
	KeyGenderSRY  = "gender_sry"
	KeyCertainty  = "certainty"
	KeyCalcGender = "calc_gender"
)

// Source column names that identify which prediction method produced a
// report file.
const (
	colReadsChrY   = "reads_chry"
	colHetFraction = "het_fraction"
	colCoverageSRY = "coverage_sry"
)

// Parse extracts columns 2-6 of the header line and first data line of
// one SampleGender report (tab-separated; the first column is the sample
// identifier and is discarded). Numeric values are stored as float64,
// NaN values as the not-available sentinel, and anything that fails the
// numeric parse as the raw string. A file with fewer than two lines has
// no data row and yields an empty mapping.
func Parse(text string) record.Fields {
	fields := record.Fields{}

	lines := splitLines(text)
	if len(lines) < 2 {
		return fields
	}

	headers := window(strings.Split(strings.TrimSpace(lines[0]), "\t"))
	values := window(strings.Split(strings.TrimSpace(lines[1]), "\t"))

	if len(values) > 0 {
		switch strings.ToLower(values[0]) {
		case "male":
			values[0] = "M"
		case "female":
			values[0] = "F"
		}
	}

	renameGenderHeader(headers)

	for i, key := range headers {
		if i >= len(values) {
			break
		}
		f, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			fields[key] = values[i]
			continue
		}
		if math.IsNaN(f) {
			fields[key] = record.NotAvailable
		} else {
			fields[key] = f
		}
	}

	return fields
}

// renameGenderHeader rewrites the header at position 0 with the internal
// key of the prediction method found in the header slice. The report
// format guarantees the gender call is always the first retained column;
// the method is identified by which metric column is present, so the
// rename does not search for the matching column itself.
func renameGenderHeader(headers []string) {
	if len(headers) == 0 {
		return
	}
	renames := []struct {
		column string
		key    string
	}{
		{colReadsChrY, KeyGenderXY},
		{colHetFraction, KeyGenderHetX},
		{colCoverageSRY, KeyGenderSRY},
	}
	for _, r := range renames {
		for _, h := range headers {
			if h == r.column {
				headers[0] = r.key
			}
		}
	}
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
