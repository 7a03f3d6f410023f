package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmgg/qcreport/internal/sexpred"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "SAMPLE1_xy.tsv")
	writeFile(t, dir, "SAMPLE1_hetx.tsv")
	writeFile(t, dir, "SAMPLE1_sry.tsv")
	writeFile(t, dir, "SAMPLE1_msh2.txt")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "SAMPLE2.tsv")

	reports, err := Find(dir)
	require.NoError(t, err)

	require.Len(t, reports.Sex, 3)
	assert.Equal(t, "SAMPLE1_hetx", reports.Sex[0].Sample)
	assert.Equal(t, sexpred.SubtypeHetX, reports.Sex[0].Subtype)
	assert.Equal(t, "SAMPLE1_sry", reports.Sex[1].Sample)
	assert.Equal(t, sexpred.SubtypeSRY, reports.Sex[1].Subtype)
	assert.Equal(t, "SAMPLE1_xy", reports.Sex[2].Sample)
	assert.Equal(t, sexpred.SubtypeXY, reports.Sex[2].Subtype)

	require.Len(t, reports.Hotspots, 1)
	assert.Equal(t, "SAMPLE1", reports.Hotspots[0].Sample)
}

func TestFindWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "runs", "run42")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, sub, "SAMPLE3_xy.tsv")

	reports, err := Find(dir)
	require.NoError(t, err)
	require.Len(t, reports.Sex, 1)
	assert.Equal(t, filepath.Join(sub, "SAMPLE3_xy.tsv"), reports.Sex[0].Path)
}

func TestFindMissingDirectory(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
