// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/jep106/internal/convert"
	"github.com/pdiddy/jep106/internal/scan"
	"github.com/pdiddy/jep106/pkg/types"
)

// ErrNoRecords reports that the document yielded no manufacturer records,
// either because conversion failed or because nothing matched the layout.
var ErrNoRecords = errors.New("no records extracted")

// Summary holds the outcome of one regeneration.
type Summary struct {
	Header   Header
	Records  int
	Enabled  int
	Disabled int
	Renames  []Rename
}

// Generate regenerates the registry at registryPath from the JEP106 PDF at
// pdfPath. The prior registry (if any) is read before conversion and fully
// rewritten afterwards. Rename notices and a summary line go to w.
func Generate(c convert.Converter, pdfPath, registryPath string, w io.Writer, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	prior := Load(registryPath)
	log.Debug("loaded prior registry", zap.String("path", registryPath), zap.Int("entries", len(prior)))

	lines, err := c.Convert(pdfPath)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing %s: %w: %w", pdfPath, ErrNoRecords, err)
	}

	res, err := scan.Scan(lines)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing %s: %w: %w", pdfPath, ErrNoRecords, err)
	}
	if res.Extracted() == 0 {
		return Summary{}, fmt.Errorf("parsing %s: %w", pdfPath, ErrNoRecords)
	}
	log.Debug("scanned document",
		zap.Int("lines", len(lines)),
		zap.Int("records", res.Extracted()),
		zap.String("document_id", res.DocumentID),
		zap.String("as_of", res.AsOf))

	entries, renames := Reconcile(res.Records, prior)
	for _, r := range renames {
		fmt.Fprintln(w, r.String())
	}

	h := Header{DocumentID: res.DocumentID, AsOf: res.AsOf}.withDefaults()
	if err := WriteFile(registryPath, h, entries); err != nil {
		return Summary{}, err
	}

	sum := summarize(h, entries, renames)
	fmt.Fprintf(w, "Generated %s from %s (%s): %d records, %d enabled, %d disabled, %d renamed\n",
		registryPath, h.DocumentID, h.AsOf, sum.Records, sum.Enabled, sum.Disabled, len(sum.Renames))
	log.Info("registry written", zap.String("path", registryPath), zap.Int("records", sum.Records))
	return sum, nil
}

func summarize(h Header, entries []types.Entry, renames []Rename) Summary {
	sum := Summary{Header: h, Records: len(entries), Renames: renames}
	for _, e := range entries {
		if e.Enabled {
			sum.Enabled++
		} else {
			sum.Disabled++
		}
	}
	return sum
}
