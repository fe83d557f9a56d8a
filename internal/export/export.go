// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes registry entries to YAML, JSON, or SQLite so other
// tools can consume the manufacturer table without parsing assembler.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jep106/pkg/types"
)

// Record is one exported manufacturer with its id split into bank and code.
// Bank is one-based, matching the JEP106 document.
type Record struct {
	ID      string `json:"id" yaml:"id"`
	Bank    int    `json:"bank" yaml:"bank"`
	Code    int    `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Document is the top-level export structure.
type Document struct {
	Source        string   `json:"source" yaml:"source"`
	Manufacturers []Record `json:"manufacturers" yaml:"manufacturers"`
}

// NewRecord splits e's composite id into bank and code.
func NewRecord(e types.Entry) (Record, error) {
	v, err := strconv.ParseUint(e.ID, 16, 16)
	if err != nil {
		return Record{}, fmt.Errorf("parsing id %q: %w", e.ID, err)
	}
	return Record{
		ID:      e.ID,
		Bank:    int(v>>8) + 1,
		Code:    int(v & 0xFF),
		Name:    e.Name,
		Enabled: e.Enabled,
	}, nil
}

// NewDocument converts entries into an export document, keeping disabled
// entries only when includeDisabled is set.
func NewDocument(source string, entries []types.Entry, includeDisabled bool) (Document, error) {
	doc := Document{Source: source, Manufacturers: make([]Record, 0, len(entries))}
	for _, e := range entries {
		if !e.Enabled && !includeDisabled {
			continue
		}
		r, err := NewRecord(e)
		if err != nil {
			return Document{}, err
		}
		doc.Manufacturers = append(doc.Manufacturers, r)
	}
	return doc, nil
}

// WriteYAML writes doc to path as YAML.
func WriteYAML(path string, doc Document) error {
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes doc to path as indented JSON.
func WriteJSON(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Write dispatches on format.
func Write(format types.ExportFormat, path string, doc Document) error {
	switch format {
	case types.ExportYAML:
		return WriteYAML(path, doc)
	case types.ExportJSON:
		return WriteJSON(path, doc)
	case types.ExportSQLite:
		return WriteSQLite(path, doc)
	default:
		return fmt.Errorf("unknown export format %q: want yaml, json, or sqlite", format)
	}
}
