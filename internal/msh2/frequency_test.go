package msh2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmgg/qcreport/internal/record"
)

func TestDeriveFrequencies(t *testing.T) {
	rec := record.Fields{
		KeyWildType:       100,
		"MSH2_c.942+3A>T": 25,
		"MSH2_c.942+2T>A": 0,
		"MSH2_c.942+2T>C": 3,
		"MSH2_c.942+2T>G": 1,
	}

	err := DeriveFrequencies(rec, DefaultSangerThreshold)
	require.NoError(t, err)

	assert.Equal(t, "20.0% (25)", rec["MSH2_c.942+3A>T"])
	assert.Equal(t, "0.0% (0)", rec["MSH2_c.942+2T>A"])
	assert.Equal(t, "2.91% (3)", rec["MSH2_c.942+2T>C"])
	assert.Equal(t, "0.99% (1)", rec["MSH2_c.942+2T>G"])

	// Wild type stays a plain integer.
	assert.Equal(t, 100, rec[KeyWildType])
}

func TestDeriveFrequenciesOutputIgnoresThreshold(t *testing.T) {
	// 25/(100+25) = 20% crosses a threshold of 10 but not 28; the cell
	// text is the same either way.
	for _, threshold := range []float64{10, DefaultSangerThreshold} {
		rec := record.Fields{KeyWildType: 100, "MSH2_c.942+3A>T": 25}
		require.NoError(t, DeriveFrequencies(rec, threshold))
		assert.Equal(t, "20.0% (25)", rec["MSH2_c.942+3A>T"])
	}
}

func TestDeriveFrequenciesZeroDepth(t *testing.T) {
	rec := record.Fields{KeyWildType: 0, "MSH2_c.942+2T>A": 0}

	err := DeriveFrequencies(rec, DefaultSangerThreshold)
	assert.ErrorIs(t, err, ErrZeroDepth)
}

func TestDeriveFrequenciesRounding(t *testing.T) {
	rec := record.Fields{KeyWildType: 2, "MSH2_c.942+3A>T": 1}
	require.NoError(t, DeriveFrequencies(rec, DefaultSangerThreshold))
	assert.Equal(t, "33.33% (1)", rec["MSH2_c.942+3A>T"])

	rec = record.Fields{KeyWildType: 0, "MSH2_c.942+3A>T": 50}
	require.NoError(t, DeriveFrequencies(rec, DefaultSangerThreshold))
	assert.Equal(t, "100.0% (50)", rec["MSH2_c.942+3A>T"])

	// Half-way values round to even: 1/32 = 3.125%.
	rec = record.Fields{KeyWildType: 31, "MSH2_c.942+3A>T": 1}
	require.NoError(t, DeriveFrequencies(rec, DefaultSangerThreshold))
	assert.Equal(t, "3.12% (1)", rec["MSH2_c.942+3A>T"])

	// 3/32 = 9.375% rounds up to the even hundredth.
	rec = record.Fields{KeyWildType: 29, "MSH2_c.942+3A>T": 3}
	require.NoError(t, DeriveFrequencies(rec, DefaultSangerThreshold))
	assert.Equal(t, "9.38% (3)", rec["MSH2_c.942+3A>T"])
}

func TestDeriveFrequenciesMissingWildType(t *testing.T) {
	rec := record.Fields{"MSH2_c.942+3A>T": 25}
	err := DeriveFrequencies(rec, DefaultSangerThreshold)
	assert.Error(t, err)
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20.0"},
		{0, "0.0"},
		{100, "100.0"},
		{33.33, "33.33"},
		{2.91, "2.91"},
		{0.99, "0.99"},
		{12.5, "12.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFrequency(tt.in))
	}
}
