// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records and configuration shared by the jep106
// scanner, registry, and export stages.
package types

import "fmt"

// Sentinel ids framing every generated registry.
const (
	NonameID  = "0000"
	UnknownID = "FFFF"
)

// RawRecord is one manufacturer row extracted from the JEP106 document.
// Bank is zero-based (the document's bank number minus one).
type RawRecord struct {
	Bank      uint8
	CompanyID uint8
	Name      string
}

// ID returns the composite id as four uppercase hex digits, bank first.
func (r RawRecord) ID() string {
	return FormatID(r.Bank, r.CompanyID)
}

// FormatID renders a bank and company code as a 4-hex-digit composite id.
func FormatID(bank, code uint8) string {
	return fmt.Sprintf("%02X%02X", bank, code)
}

// Entry is one record of a registry file. Enabled is false when the line
// was commented out.
type Entry struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// IsSentinel reports whether id is one of the two fixed framing records.
func IsSentinel(id string) bool {
	return id == NonameID || id == UnknownID
}
