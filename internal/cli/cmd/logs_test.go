package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewThemeFromPalette(config.DefaultConfig().Appearance.DarkPalette)
}

func writeLog(t *testing.T, dir, name, body string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestListLogFiles_CurrentFirstThenNewest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeLog(t, dir, "floatdesk.log.2026-01-01-10-00-00.000.gz", "x", now.Add(-48*time.Hour))
	writeLog(t, dir, "floatdesk.log", "current", now.Add(-time.Hour))
	writeLog(t, dir, "floatdesk.log.2026-01-02-10-00-00.000", "y", now.Add(-24*time.Hour))
	writeLog(t, dir, "other.txt", "z", now)

	files, err := listLogFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.True(t, files[0].Current)
	assert.Equal(t, "floatdesk.log.2026-01-02-10-00-00.000", files[1].Name)
	assert.Equal(t, "floatdesk.log.2026-01-01-10-00-00.000.gz", files[2].Name)

	missing, err := listLogFiles(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestClearLogFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeLog(t, dir, "floatdesk.log", "current", now.Add(-30*24*time.Hour))
	old := writeLog(t, dir, "floatdesk.log.old", "old", now.Add(-10*24*time.Hour))
	recent := writeLog(t, dir, "floatdesk.log.recent", "recent", now.Add(-time.Hour))

	files, err := listLogFiles(dir)
	require.NoError(t, err)

	removed, failed := clearLogFiles(files, false, now.AddDate(0, 0, -7))
	assert.Empty(t, failed)
	require.Len(t, removed, 1)
	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, filepath.Join(dir, "floatdesk.log"), "the current file is kept")

	files, err = listLogFiles(dir)
	require.NoError(t, err)
	removed, _ = clearLogFiles(files, true, now)
	assert.Len(t, removed, 1)
	assert.NoFileExists(t, recent)
}

func TestLastLines(t *testing.T) {
	lines, err := lastLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestShowLog(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "floatdesk.log",
		`{"level":"info","time":"2026-01-02T10:00:00Z","component":"desk","message":"layout restored"}`+"\n"+
			"10:00:01 WRN snapshot save retry\n", time.Now())

	var out bytes.Buffer
	require.NoError(t, showLog(&out, path, 10, testTheme()))
	assert.Contains(t, out.String(), "layout restored")
	assert.Contains(t, out.String(), "[desk]")
	assert.Contains(t, out.String(), "snapshot save retry")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "10.0 MiB", formatSize(10*1024*1024))
}

func TestDocsTarget(t *testing.T) {
	dir, ext, err := docsTarget("markdown", "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)
	assert.Equal(t, ".md", ext)

	dir, ext, err = docsTarget("man", "/tmp/man")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/man", dir)
	assert.Equal(t, ".1", ext)

	_, _, err = docsTarget("pdf", "")
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"desk":     nil,
		"layout":   {"show", "list", "export", "import", "reset", "schema"},
		"config":   {"path", "keys", "schema"},
		"logs":     {"files", "clear"},
		"about":    nil,
		"gen-docs": nil,
	}
	for name, subs := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
		for _, sub := range subs {
			sc, _, err := rootCmd.Find([]string{name, sub})
			require.NoError(t, err, name+" "+sub)
			assert.Equal(t, sub, sc.Name())
		}
	}
}
