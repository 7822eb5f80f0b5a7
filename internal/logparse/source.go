package logparse

import (
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// DirSource loads day logs from a directory holding one file per calendar
// day, named <YYYY-MM-DD>.log.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Path returns the expected file path for a given day.
func (s *DirSource) Path(day time.Time) string {
	return filepath.Join(s.dir, domain.DateKey(day)+".log")
}

// Load parses the log file for day. A missing or unreadable file is not an
// error: the day simply has no sessions.
func (s *DirSource) Load(day time.Time) []domain.Session {
	f, err := os.Open(s.Path(day))
	if err != nil {
		return nil
	}
	defer f.Close()

	var p Parser
	sessions, err := p.Parse(f)
	if err != nil {
		return nil
	}
	return sessions
}
