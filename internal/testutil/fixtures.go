package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SessionBlock describes one log-file session block for fixtures.
type SessionBlock struct {
	Start   string // "09:15"
	End     string // "10:45"
	Minutes int    // 0 means "omit the duration line"
	Project string // "" means "omit the label line"
}

// LogText renders session blocks into the on-disk log dialect for date.
func LogText(date string, blocks ...SessionBlock) string {
	var b strings.Builder
	for _, blk := range blocks {
		start, end := blk.Start, blk.End
		if start == "" {
			start, end = "09:00", "10:00"
		}
		fmt.Fprintf(&b, "== %s %s-%s\n", date, start, end)
		if blk.Minutes > 0 {
			fmt.Fprintf(&b, "duration: %dm\n", blk.Minutes)
		}
		if blk.Project != "" {
			fmt.Fprintf(&b, "project: %s\n", blk.Project)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDayLog writes a log file for date into dir, creating it from blocks.
func WriteDayLog(t *testing.T, dir, date string, blocks ...SessionBlock) {
	t.Helper()
	path := filepath.Join(dir, date+".log")
	require.NoError(t, os.WriteFile(path, []byte(LogText(date, blocks...)), 0644))
}

// Day parses an ISO date into a UTC day-precision time, failing the test on
// malformed input.
func Day(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return d
}
