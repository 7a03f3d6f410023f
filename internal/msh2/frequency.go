package msh2

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cmgg/qcreport/internal/record"
)

// DefaultSangerThreshold is the variant frequency percentage above which
// orthogonal Sanger confirmation is conventionally warranted.
const DefaultSangerThreshold = 28.0

// ErrZeroDepth is returned when a variant and the wild type both have
// zero reads, leaving no denominator for the frequency.
var ErrZeroDepth = errors.New("zero total read depth")

// DeriveFrequencies rewrites every variant count in rec as a
// "<frequency>% (<count>)" string, where frequency is the variant's
// share of variant+wild-type reads rounded to two decimals. The
// wild-type count stays an integer. Must run exactly once per record:
// the counts are consumed by the formatting.
func DeriveFrequencies(rec record.Fields, sangerThreshold float64) error {
	wt, ok := rec[KeyWildType].(int)
	if !ok {
		return fmt.Errorf("%s missing or not an integer count", KeyWildType)
	}

	for key, value := range rec {
		if key == KeyWildType {
			continue
		}
		count, ok := value.(int)
		if !ok {
			return fmt.Errorf("count for %s is not an integer", key)
		}

		depth := wt + count
		if depth == 0 {
			return fmt.Errorf("%s: %w", key, ErrZeroDepth)
		}

		// Halves round to even, matching Python's round(x, 2):
		// 1/(31+1) is 3.12%, not 3.13%.
		freq := math.RoundToEven(float64(count)/float64(depth)*100*100) / 100

		// TODO: both branches produce the same string; the threshold
		// should switch the cell to the Sanger-confirmation marker once
		// the highlighting contract for flagged cells is settled.
		if freq >= sangerThreshold {
			rec[key] = fmt.Sprintf("%s%% (%d)", formatFrequency(freq), count)
		} else {
			rec[key] = fmt.Sprintf("%s%% (%d)", formatFrequency(freq), count)
		}
	}

	return nil
}

// formatFrequency renders a rounded frequency with at least one decimal,
// so 20 prints as "20.0" and 33.33 as "33.33".
func formatFrequency(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
