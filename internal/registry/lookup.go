// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/jep106/pkg/types"
)

// ParseID normalizes a manufacturer id given as four hex digits ("802C"),
// a one-based bank and decimal code ("1:78"), or an SPD byte pair
// ("spd:0x80,0xCE") holding the continuation count and the code byte, both
// with odd parity in bit 7.
func ParseID(s string) (string, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(strings.ToLower(s), "spd:"); ok {
		cont, code, found := strings.Cut(rest, ",")
		if !found {
			return "", fmt.Errorf("parsing SPD id %q: want spd:<continuation>,<code>", s)
		}
		c, err := strconv.ParseUint(strings.TrimSpace(cont), 0, 8)
		if err != nil {
			return "", fmt.Errorf("parsing SPD continuation byte %q: %w", cont, err)
		}
		m, err := strconv.ParseUint(strings.TrimSpace(code), 0, 8)
		if err != nil {
			return "", fmt.Errorf("parsing SPD code byte %q: %w", code, err)
		}
		return FromSPD(uint8(c), uint8(m)), nil
	}

	if bank, code, found := strings.Cut(s, ":"); found {
		b, err := strconv.ParseUint(bank, 10, 16)
		if err != nil || b < 1 || b > 256 {
			return "", fmt.Errorf("parsing bank %q: want 1-256", bank)
		}
		c, err := strconv.ParseUint(code, 10, 8)
		if err != nil {
			return "", fmt.Errorf("parsing code %q: %w", code, err)
		}
		return types.FormatID(uint8(b-1), uint8(c)), nil
	}

	if len(s) != 4 {
		return "", fmt.Errorf("parsing id %q: want 4 hex digits, bank:code, or spd:cont,code", s)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return "", fmt.Errorf("parsing id %q: %w", s, err)
	}
	return fmt.Sprintf("%04X", v), nil
}

// FromSPD forms the composite id from the SPD continuation count and
// manufacturer code bytes, stripping the parity bit of each.
func FromSPD(continuation, code uint8) string {
	return types.FormatID(continuation&0x7F, code&0x7F)
}

// Find returns the entry with the given id.
func Find(entries []types.Entry, id string) (types.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return types.Entry{}, false
}
