package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmgg/qcreport/internal/record"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndReadRecords(t *testing.T) {
	s := openInMemory(t)

	reg := record.NewRegistry()
	reg.Upsert("SAMPLE1", record.Fields{
		"certainty":   1.0,
		"calc_gender": "M",
		"gender_xy":   "M",
	})
	reg.Upsert("SAMPLE2", record.Fields{
		"certainty":   0.0,
		"calc_gender": "Unknown",
	})

	require.NoError(t, s.WriteRecords("ngsbits_samplegender", reg))

	got, err := s.ReadRecords("ngsbits_samplegender")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{
		"certainty":   "1",
		"calc_gender": "M",
		"gender_xy":   "M",
	}, got["SAMPLE1"])
	assert.Equal(t, "Unknown", got["SAMPLE2"]["calc_gender"])
}

func TestWriteRecordsReplacesReport(t *testing.T) {
	s := openInMemory(t)

	reg := record.NewRegistry()
	reg.Upsert("SAMPLE1", record.Fields{"calc_gender": "M"})
	require.NoError(t, s.WriteRecords("ngsbits_samplegender", reg))

	updated := record.NewRegistry()
	updated.Upsert("SAMPLE1", record.Fields{"calc_gender": "F"})
	require.NoError(t, s.WriteRecords("ngsbits_samplegender", updated))

	got, err := s.ReadRecords("ngsbits_samplegender")
	require.NoError(t, err)
	assert.Equal(t, "F", got["SAMPLE1"]["calc_gender"])
}

func TestReportsAreIndependent(t *testing.T) {
	s := openInMemory(t)

	sexReg := record.NewRegistry()
	sexReg.Upsert("SAMPLE1", record.Fields{"calc_gender": "M"})
	require.NoError(t, s.WriteRecords("ngsbits_samplegender", sexReg))

	msh2Reg := record.NewRegistry()
	msh2Reg.Upsert("SAMPLE1", record.Fields{"MSH2_c.942+3_wt": 100})
	require.NoError(t, s.WriteRecords("targeted_msh2", msh2Reg))

	samples, err := s.Samples("targeted_msh2")
	require.NoError(t, err)
	assert.Equal(t, []string{"SAMPLE1"}, samples)

	got, err := s.ReadRecords("targeted_msh2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"MSH2_c.942+3_wt": "100"}, got["SAMPLE1"])
	_, hasGender := got["SAMPLE1"]["calc_gender"]
	assert.False(t, hasGender)
}

func TestWriteRecordsEmptyRegistry(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRecords("targeted_msh2", record.NewRegistry()))

	got, err := s.ReadRecords("targeted_msh2")
	require.NoError(t, err)
	assert.Empty(t, got)
}
