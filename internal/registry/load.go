// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry reads, merges, and writes jep106.S manufacturer
// registries. A registry is regenerated in full from each scan; entries a
// maintainer commented out stay disabled, and names of enabled entries are
// never overwritten by freshly scraped text.
package registry

import (
	"bufio"
	"io"
	"os"
	"regexp"

	"github.com/pdiddy/jep106/pkg/types"
)

// commentPrefix disables a registry line.
const commentPrefix = "//"

var reEntry = regexp.MustCompile(`^(//)?\s*jedec\s+"([0-9A-F]{4})",\s*"(.*)"\s*$`)

// Prior is the set of entries read from an earlier registry, keyed by id.
type Prior map[string]types.Entry

// Load reads the registry at path. A missing or unreadable file yields an
// empty Prior; that is the normal state on a first run.
func Load(path string) Prior {
	f, err := os.Open(path)
	if err != nil {
		return Prior{}
	}
	defer f.Close()

	prior, err := Parse(f)
	if err != nil {
		return Prior{}
	}
	return prior
}

// Parse reads registry lines from r. Lines that are not jedec records are
// ignored. When an id appears more than once the last line wins.
func Parse(r io.Reader) (Prior, error) {
	prior := Prior{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		e, ok := parseLine(sc.Text())
		if ok {
			prior[e.ID] = e
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return prior, nil
}

// Entries returns the records of the registry at r in file order.
func Entries(r io.Reader) ([]types.Entry, error) {
	var entries []types.Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if e, ok := parseLine(sc.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseLine(line string) (types.Entry, bool) {
	m := reEntry.FindStringSubmatch(line)
	if m == nil {
		return types.Entry{}, false
	}
	return types.Entry{
		ID:      m[2],
		Name:    m[3],
		Enabled: m[1] == "",
	}, true
}
