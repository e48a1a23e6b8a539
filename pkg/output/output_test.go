package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/wfam/pkg/models"
)

func sampleReport() *models.Report {
	result := &models.Result{
		Missing:   []models.FileEntry{{Path: "/unsorted/new.jpg", Size: 10}},
		Different: []models.FileEntry{{Path: "/unsorted/a.jpg", Size: 2048}},
		Matched:   3,
		Skipped:   1,
	}
	return &models.Report{
		RunID:        "run-1",
		BasePattern:  "/photos/*",
		BaseDirs:     []string{"/photos/2020", "/photos/2021"},
		UnsortedPath: "/unsorted",
		Extensions:   models.ParseExtensionFilter(".jpg"),
		NameCase:     models.NameCaseSensitive,
		Duration:     1500 * time.Millisecond,
		IndexedNames: 7,
		IndexedFiles: 9,
		Result:       result,
		Status:       models.StatusFor(result),
	}
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("human", false)
	require.NoError(t, err)
	assert.Equal(t, "human", f.Name())

	f, err = NewFormatter("", false)
	require.NoError(t, err)
	assert.Equal(t, "human", f.Name())

	f, err = NewFormatter("json", false)
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	_, err = NewFormatter("xml", false)
	assert.Error(t, err)
}

func TestHumanFormatter(t *testing.T) {
	t.Run("Incomplete", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewHumanFormatter(false).Complete(&buf, sampleReport()))

		out := buf.String()
		assert.Contains(t, out, "Some files from /unsorted are not present in /photos/*")
		assert.Contains(t, out, "/unsorted/new.jpg\n")
		assert.Contains(t, out, "/unsorted/a.jpg (2.0 KiB)\n")
		assert.Contains(t, out, "Files checked:  5")
		assert.Contains(t, out, "Status: incomplete")
		assert.NotContains(t, out, "All files from")
		assert.NotContains(t, out, "\x1b[", "no escape codes without color")
	})

	t.Run("AllPresent", func(t *testing.T) {
		report := sampleReport()
		report.Result = &models.Result{Matched: 2}
		report.Status = models.StatusFor(report.Result)

		var buf bytes.Buffer
		require.NoError(t, NewHumanFormatter(false).Complete(&buf, report))
		assert.Contains(t, buf.String(), "All files from /unsorted are present in /photos/*")
		assert.Contains(t, buf.String(), "Status: all_present")
	})

	t.Run("Color", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewHumanFormatter(true).Complete(&buf, sampleReport()))
		assert.Contains(t, buf.String(), "\x1b[")
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Complete(&buf, sampleReport()))

	var data JSONReportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "run-1", data.RunID)
	assert.Equal(t, "incomplete", data.Status)
	assert.Equal(t, []string{".jpg"}, data.Extensions)
	assert.Equal(t, int64(1500), data.DurationMs)
	assert.Equal(t, 5, data.Stats.Checked)
	assert.Equal(t, 1, data.Stats.Missing)
	assert.Equal(t, []models.FileEntry{{Path: "/unsorted/new.jpg", Size: 10}}, data.Missing)

	t.Run("EmptyListsAreArrays", func(t *testing.T) {
		report := sampleReport()
		report.Result = &models.Result{}
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter().Complete(&buf, report))
		assert.Contains(t, buf.String(), `"missing": []`)
		assert.Contains(t, buf.String(), `"different": []`)
	})
}

func TestWriteList(t *testing.T) {
	dir := t.TempDir()
	entries := []models.FileEntry{
		{Path: "/unsorted/b.jpg", Size: 1},
		{Path: "/unsorted/a.jpg", Size: 2},
	}

	t.Run("Text", func(t *testing.T) {
		path := filepath.Join(dir, "missing.txt")
		require.NoError(t, WriteList(path, entries, ListFormatText))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "/unsorted/b.jpg\n/unsorted/a.jpg\n", string(data))
	})

	t.Run("Overwrites", func(t *testing.T) {
		path := filepath.Join(dir, "diff.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0644))
		require.NoError(t, WriteList(path, entries[:1], ListFormatText))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "/unsorted/b.jpg\n", string(data))
	})

	t.Run("EmptyCreatesFile", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "empty.txt")
		require.NoError(t, WriteList(path, nil, ListFormatText))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "missing.json")
		require.NoError(t, WriteList(path, entries, ListFormatJSON))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var decoded []models.FileEntry
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, entries, decoded)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		err := WriteList(filepath.Join(dir, "x.csv"), entries, "csv")
		assert.Error(t, err)
		_, statErr := os.Stat(filepath.Join(dir, "x.csv"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestBarProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewBarProgress(&buf, "Comparing")
	p.Start(3)
	p.Increment()
	p.Increment()
	p.Increment()
	p.Finish()
	p.Finish()

	assert.Equal(t, int64(3), p.Current())
	assert.True(t, strings.Contains(buf.String(), "3 / 3"))

	p.Increment()
	assert.Equal(t, int64(3), p.Current(), "increments after finish are ignored")
}

func TestShouldShowProgress(t *testing.T) {
	assert.False(t, ShouldShowProgress(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ShouldShowProgress(f))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(1536*1024))
}
