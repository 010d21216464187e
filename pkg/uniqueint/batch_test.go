package uniqueint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDir(t *testing.T) {
	inDir := filepath.Join(t.TempDir(), "sample_inputs")
	outDir := filepath.Join(t.TempDir(), "sample_results")
	require.NoError(t, os.Mkdir(inDir, 0o755))
	writeInput(t, inDir, "sample_01.txt", "5\n3\n5\n-1\n3\n")
	writeInput(t, inDir, "sample_02.txt", "10 20\nabc\n\n7\n")
	require.NoError(t, os.Mkdir(filepath.Join(inDir, "nested"), 0o755))

	report, err := New(nil).ProcessDir(inDir, outDir)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 0, report.Failed())

	assert.Equal(t, filepath.Join(outDir, "sample_01.txt_results.txt"), report.Results[0].Output)
	assert.Equal(t, 3, report.Results[0].Count)
	assert.Equal(t, "-1\n3\n5\n", readOutput(t, report.Results[0].Output))
	assert.Equal(t, "7\n", readOutput(t, filepath.Join(outDir, "sample_02.txt_results.txt")))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "only results files, no leftover temp files")
}

func TestProcessDirContinuesAfterFailure(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeInput(t, inDir, "a.txt", "1\n")
	writeInput(t, inDir, "b.txt", "2\n")
	writeInput(t, inDir, "c.txt", "3\n")
	// a folder where b's results file should go makes its write fail
	require.NoError(t, os.Mkdir(filepath.Join(outDir, "b.txt_results.txt"), 0o755))

	report, err := New(nil).ProcessDir(inDir, outDir)
	require.Error(t, err)

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filepath.Join(outDir, "b.txt_results.txt"), writeErr.Path)

	require.Len(t, report.Results, 3)
	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 1, report.Failed())
	assert.Error(t, report.Results[1].Err)
	assert.Equal(t, "1\n", readOutput(t, filepath.Join(outDir, "a.txt_results.txt")))
	assert.Equal(t, "3\n", readOutput(t, filepath.Join(outDir, "c.txt_results.txt")))
}

func TestProcessDirSymlinkedInput(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	target := writeInput(t, t.TempDir(), "shared.txt", "4\n2\n4\n")
	require.NoError(t, os.Symlink(target, filepath.Join(inDir, "sample_03.txt")))

	report, err := New(nil).ProcessDir(inDir, outDir)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "2\n4\n", readOutput(t, filepath.Join(outDir, "sample_03.txt_results.txt")))
}

func TestProcessDirSkipsPreviousResults(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.txt", "1\n")
	writeInput(t, dir, "a.txt_results.txt", "1\n")

	report, err := New(nil).ProcessDir(dir, dir)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, filepath.Join(dir, "a.txt"), report.Results[0].Input)
}

func TestProcessDirMissingInputDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	_, err := New(nil).ProcessDir(filepath.Join(dir, "missing"), outDir)
	require.Error(t, err)

	var readErr *ReadError
	assert.True(t, errors.As(err, &readErr))

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessDirOutputIsAFile(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	require.NoError(t, os.Mkdir(inDir, 0o755))
	writeInput(t, inDir, "a.txt", "1\n")
	outFile := writeInput(t, dir, "out", "")

	_, err := New(nil).ProcessDir(inDir, outFile)
	require.Error(t, err)

	var writeErr *WriteError
	assert.True(t, errors.As(err, &writeErr))
}

func TestBatchReportCounts(t *testing.T) {
	report := BatchReport{Results: []FileResult{
		{Input: "a"},
		{Input: "b", Err: errors.New("boom")},
		{Input: "c"},
	}}

	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 1, report.Failed())
}
