// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan extracts manufacturer records from the plain-text rendering
// of a JEDEC JEP106 document.
//
// The document wraps long manufacturer names across lines and interleaves
// bank annotations between table rows, so the scanner is a line-driven state
// machine: a line ending in the binary-plus-hex code columns is the only
// record boundary, and everything before it is buffered.
package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/jep106/pkg/types"
)

// State is the scanner's position within the document layout.
type State int

const (
	StateInit State = iota
	StateSeekCode
	StateCaptureID
	StateIDDone
	StateScope
	StateNeedCompany
	StateCompany
	StateMIC
)

var stateNames = [...]string{
	StateInit:        "init",
	StateSeekCode:    "seek-code",
	StateCaptureID:   "capture-id",
	StateIDDone:      "id-done",
	StateScope:       "scope",
	StateNeedCompany: "need-company",
	StateCompany:     "company",
	StateMIC:         "mic",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Fixed marker lines of the JEP106 layout.
const (
	markerManufacturer = "Standard Manufacturer's"
	markerIdentCode    = "Identification Code"
	markerScope        = "2 Scope"
	markerTableHeader  = "COMPANY 8 7 6 5 4 3 2 1 HEX"
	prefixAnnex        = "Annex"
)

var (
	reScopeDate = regexp.MustCompile(`The present list is complete as of ([A-Za-z]+) ([0-9]+), ([0-9]+)`)
	reBank      = regexp.MustCompile(`The following numbers are all in bank (.+):`)
	reCompany   = regexp.MustCompile(`(\d+) (.+) ([01] ){8}([0-9A-F]{2})$`)
	reCodeTail  = regexp.MustCompile(`([01] ){8}([0-9A-F]{2})$`)
)

var bankWords = map[string]int{
	"one":      1,
	"two":      2,
	"three":    3,
	"four":     4,
	"five":     5,
	"six":      6,
	"seven":    7,
	"eight":    8,
	"nine":     9,
	"ten":      10,
	"eleven":   11,
	"twelve":   12,
	"thirteen": 13,
	"fourteen": 14,
	"fifteen":  15,
}

var months = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// Sentinel records framing every scan result.
var (
	firstRecord = types.RawRecord{Bank: 0, CompanyID: 0, Name: "Noname"}
	lastRecord  = types.RawRecord{Bank: 255, CompanyID: 255, Name: "Unknown"}
)

// Result is the outcome of scanning one document. DocumentID and AsOf are
// empty when the document did not carry them.
type Result struct {
	DocumentID string
	AsOf       string
	Records    []types.RawRecord
}

// Extracted returns the number of records taken from the document itself,
// excluding the two sentinels.
func (r Result) Extracted() int {
	if len(r.Records) < 2 {
		return 0
	}
	return len(r.Records) - 2
}

// Scanner consumes document lines one at a time. The zero value is not
// usable; call New.
type Scanner struct {
	state State
	// bank is the document's one-based bank number; it changes independently
	// of state whenever a bank marker is seen.
	bank  int
	scope string
	row   string
	done  bool
	res   Result
}

// New returns a scanner positioned before the first line, with the leading
// sentinel record already emitted.
func New() *Scanner {
	return &Scanner{
		state: StateInit,
		bank:  1,
		res:   Result{Records: []types.RawRecord{firstRecord}},
	}
}

// State reports the current scanner state.
func (s *Scanner) State() State { return s.state }

// Done reports whether an Annex line has ended the scan.
func (s *Scanner) Done() bool { return s.done }

// Line feeds one document line to the scanner. Lines after the Annex
// marker are ignored. An error is returned only for a bank marker whose
// bank number cannot be resolved.
func (s *Scanner) Line(line string) error {
	if s.done {
		return nil
	}
	if strings.HasPrefix(line, prefixAnnex) {
		s.done = true
		return nil
	}

	switch {
	case s.state == StateInit && line == markerManufacturer:
		s.state = StateSeekCode
		return nil
	case s.state == StateSeekCode && line == markerIdentCode:
		s.state = StateCaptureID
		return nil
	case s.state == StateCaptureID:
		s.res.DocumentID = line
		s.state = StateIDDone
		return nil
	case line == markerScope:
		s.state = StateScope
		return nil
	case s.state == StateScope:
		s.scopeLine(line)
		return nil
	}

	if m := reBank.FindStringSubmatch(line); m != nil {
		bank, err := resolveBank(m[1])
		if err != nil {
			return err
		}
		s.bank = bank
		return nil
	}

	if line == markerTableHeader {
		s.state = StateCompany
		return nil
	}

	if s.state == StateCompany || s.state == StateMIC {
		s.recordLine(line)
	}
	return nil
}

// Finish appends the trailing sentinel and returns the scan result.
func (s *Scanner) Finish() Result {
	res := s.res
	res.Records = append(res.Records[:len(res.Records):len(res.Records)], lastRecord)
	return res
}

// Scan runs a complete pass over lines.
func Scan(lines []string) (Result, error) {
	s := New()
	for i, line := range lines {
		if err := s.Line(line); err != nil {
			return Result{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if s.Done() {
			break
		}
	}
	return s.Finish(), nil
}

func (s *Scanner) scopeLine(line string) {
	s.scope += " " + line
	m := reScopeDate.FindStringSubmatch(s.scope)
	if m == nil {
		return
	}
	if month, ok := months[strings.ToLower(m[1])]; ok {
		day, err := strconv.Atoi(m[2])
		if err == nil {
			s.res.AsOf = fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
		}
	}
	s.scope = ""
	s.state = StateNeedCompany
}

func (s *Scanner) recordLine(line string) {
	if reCodeTail.MatchString(line) {
		s.row += " " + line
		m := reCompany.FindStringSubmatch(s.row)
		s.row = ""
		s.state = StateCompany
		if m == nil {
			return
		}
		// Ids above 255 cannot be encoded; drop them like any malformed row.
		id, err := strconv.ParseUint(m[1], 10, 8)
		if err != nil {
			return
		}
		s.res.Records = append(s.res.Records, types.RawRecord{
			Bank:      uint8(s.bank - 1),
			CompanyID: uint8(id),
			Name:      m[2],
		})
		return
	}

	if s.state == StateMIC {
		s.row += " " + line
		return
	}

	if first, _, _ := strings.Cut(line, " "); isDigits(first) {
		s.row = line
		s.state = StateMIC
	}
}

// resolveBank maps a bank marker word to its one-based bank number.
func resolveBank(word string) (int, error) {
	if n, ok := bankWords[word]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("parsing bank %q: %w", word, err)
	}
	if n < 1 || n > 256 {
		return 0, fmt.Errorf("bank %d out of range 1-256", n)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
