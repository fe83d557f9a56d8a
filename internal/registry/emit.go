// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/jep106/pkg/types"
)

// Placeholders used when the document did not carry its metadata.
const (
	DefaultDocumentID = "JEP106"
	DefaultAsOf       = "Unknown"
)

// Header describes the document a registry was generated from.
type Header struct {
	DocumentID string
	AsOf       string
}

func (h Header) withDefaults() Header {
	if h.DocumentID == "" {
		h.DocumentID = DefaultDocumentID
	}
	if h.AsOf == "" {
		h.AsOf = DefaultAsOf
	}
	return h
}

const preamble = `// SPDX-License-Identifier: GPL-2.0
/*
 * SPD JEDEC Manufacturer codes.
 *
 * Based on JEDEC %s from %s
 *
 * The list has back to back records of the following structure:
 * uint8_t len;
 * uint8_t code_h
 * uint8_t code_l
 * char    name[]
 *
 * ` + "`len`" + ` is the length of the entire record, including the len field itself.
 * ` + "`code_h` and `code_l`" + ` together form the 16-bit JEDEC manufacturer ID.
 * ` + "`name`" + ` is a null terminated string
 *
 * The list is terminated by a single zero byte (len = 0).
 * The minimal record size - ` + "`len`" + ` is 5: 1 byte for len, 2 bytes for code,
 * plus a null terminated string with at least single character (2 bytes).
 *
 */

	.global	jep106_data
	.section	".rodata"

	.macro jedec	id, name
	.byte	(.jep106_\id\()_end - .jep106_\id\()_start + 3)
	.byte	(0x\id >> 8) & 0xff, 0x\id & 0xff
	.jep106_\id\()_start:
	.asciz	"\name"
	.jep106_\id\()_end:
	.endm

jep106_data:
`

const terminator = "\t.byte\t0\n"

// Emit writes the complete registry for entries to w.
func Emit(w io.Writer, h Header, entries []types.Entry) error {
	h = h.withDefaults()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, preamble, h.DocumentID, h.AsOf)
	for _, e := range entries {
		bw.WriteString(FormatLine(e))
		bw.WriteByte('\n')
	}
	bw.WriteString(terminator)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// FormatLine renders one entry as a jedec macro invocation, commented out
// when the entry is disabled.
func FormatLine(e types.Entry) string {
	prefix := ""
	if !e.Enabled {
		prefix = commentPrefix
	}
	return fmt.Sprintf("%s\tjedec\t\"%s\", \"%s\"", prefix, e.ID, e.Name)
}

// WriteFile replaces the registry at path. The content is written to a
// temporary file in the same directory and renamed over path, so readers
// never observe a partial registry.
func WriteFile(path string, h Header, entries []types.Entry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary registry in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Emit(tmp, h, entries); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary registry: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting registry permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing registry %s: %w", path, err)
	}
	return nil
}
