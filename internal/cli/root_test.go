package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires a fixed clock (Saturday 2024-03-09), a buffer for stdout,
// and a log dir, defaulting to non-terminal output.
func testApp(dir string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &App{
		Now:           func() time.Time { return time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC) },
		Stdout:        &out,
		IsTerminal:    func() bool { return false },
		DefaultLogDir: dir,
	}
	return app, &out
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stdout)
	return root.Execute()
}

func seedWeek(t *testing.T, dir string) {
	t.Helper()
	testutil.WriteDayLog(t, dir, "2024-03-04", testutil.SessionBlock{Minutes: 90, Project: "alpha"})
	testutil.WriteDayLog(t, dir, "2024-03-05", testutil.SessionBlock{Minutes: 0, Project: "ghost"})
}

func TestRoot_DefaultEmitsHTMLToStdout(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	app, out := testApp(dir)

	require.NoError(t, execute(t, app, "--weeks", "1"))

	html := out.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "1h 30m")
	assert.Contains(t, html, "alpha")
}

func TestRoot_TerminalFormatWhenTTY(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	app, out := testApp(dir)
	app.IsTerminal = func() bool { return true }

	require.NoError(t, execute(t, app, "--weeks", "1"))

	plain := ansiPattern.ReplaceAllString(out.String(), "")
	assert.Contains(t, plain, "Total time")
	assert.Contains(t, plain, "1h 30m")
	assert.NotContains(t, plain, "<!DOCTYPE html>")
}

func TestRoot_FormatFlagOverridesDetection(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	app, out := testApp(dir)
	app.IsTerminal = func() bool { return true }

	require.NoError(t, execute(t, app, "--weeks", "1", "--format", "html"))
	assert.Contains(t, out.String(), "<!DOCTYPE html>")
}

func TestRoot_UnknownFormatFails(t *testing.T) {
	app, _ := testApp(t.TempDir())
	err := execute(t, app, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRoot_InvalidWeeksFailFast(t *testing.T) {
	app, _ := testApp(t.TempDir())

	err := execute(t, app, "--weeks", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--weeks")

	assert.Error(t, execute(t, app, "--weeks", "banana"),
		"non-numeric week count must be rejected")
}

func TestRoot_OutputFlagWritesFile(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	app, out := testApp(dir)
	path := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, execute(t, app, "--weeks", "1", "-o", path))

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<!DOCTYPE html>")
	assert.Empty(t, out.String(), "file output leaves stdout quiet")
}

func TestRoot_OutputWriteFailureIsFatal(t *testing.T) {
	app, _ := testApp(t.TempDir())
	path := filepath.Join(t.TempDir(), "missing", "nested", "report.html")

	err := execute(t, app, "--weeks", "1", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report")
}

func TestRoot_MissingLogDirIsNotAnError(t *testing.T) {
	app, out := testApp(filepath.Join(t.TempDir(), "nowhere"))

	require.NoError(t, execute(t, app, "--weeks", "1"))
	assert.Contains(t, out.String(), "<!DOCTYPE html>")
}

func TestStats_PrintsSummaryOnly(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	app, out := testApp(dir)

	require.NoError(t, execute(t, app, "stats", "--weeks", "1"))

	plain := ansiPattern.ReplaceAllString(out.String(), "")
	assert.Contains(t, plain, "Total time")
	assert.Contains(t, plain, "Active days")
	assert.NotContains(t, plain, "<!DOCTYPE html>")
}

// brokenPipe mimics a consumer that stopped reading stdout.
type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestRoot_ClosedStdoutPipeExitsClean(t *testing.T) {
	app, _ := testApp(t.TempDir())
	app.Stdout = brokenPipe{}

	assert.NoError(t, execute(t, app, "--weeks", "1"))
}
