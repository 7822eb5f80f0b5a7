package logparse

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// Line dialect recognized inside a day's log file. Anything that matches
// none of these patterns is ignored.
var (
	// == 2024-03-04 09:15-10:45
	headerRe = regexp.MustCompile(`^=+\s*(\d{4}-\d{2}-\d{2})\s+(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})\s*$`)
	// duration: 90  /  duration: 90m  /  Duration: 90 minutes
	durationRe = regexp.MustCompile(`(?i)^\s*duration:\s*(\d+)\s*(?:m|min|minutes)?\s*$`)
	// project: alpha  /  location: library
	labelRe = regexp.MustCompile(`(?i)^\s*(?:project|location):\s*(\S.*?)\s*$`)
)

// parserState is the scanner's position relative to a session block.
type parserState int

const (
	stateIdle parserState = iota // no open session
	stateInSession
)

// Parser turns the raw text of one log file into an ordered sequence of
// sessions. It is a two-state machine: a header line opens a session
// (flushing any previous one), duration and label lines fill it in, and
// end of input flushes the last open session.
type Parser struct {
	state    parserState
	open     domain.Session
	sessions []domain.Session
}

// Parse scans r line by line and returns every recognized session in
// order. Malformed lines are skipped; only a read error from r itself is
// reported.
func (p *Parser) Parse(r io.Reader) ([]domain.Session, error) {
	p.state = stateIdle
	p.sessions = nil

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.flush()
	return p.sessions, nil
}

// ParseString is a convenience wrapper for tests and in-memory input.
func (p *Parser) ParseString(text string) []domain.Session {
	sessions, _ := p.Parse(strings.NewReader(text))
	return sessions
}

func (p *Parser) line(text string) {
	if m := headerRe.FindStringSubmatch(text); m != nil {
		p.flush()
		date, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			// Matched shape but not a real calendar date; stay idle.
			return
		}
		p.open = domain.Session{Date: date}
		p.state = stateInSession
		return
	}

	if p.state != stateInSession {
		return
	}
	if m := durationRe.FindStringSubmatch(text); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err == nil {
			p.open.Minutes = minutes
		}
		return
	}
	if m := labelRe.FindStringSubmatch(text); m != nil {
		p.open.Project = m[1]
	}
}

// flush closes the open session, if any, and returns the machine to idle.
func (p *Parser) flush() {
	if p.state == stateInSession {
		p.sessions = append(p.sessions, p.open)
		p.open = domain.Session{}
		p.state = stateIdle
	}
}
