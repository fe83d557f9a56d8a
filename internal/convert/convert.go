// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns the JEP106 PDF into plain-text lines by running
// pdftotext, either on the host or inside a container image.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/text/encoding/charmap"
)

// Converter transforms a PDF file into the lines of its raw text rendering.
type Converter interface {
	// Convert reads the PDF at pdfPath and returns its text, one entry per line.
	Convert(pdfPath string) ([]string, error)
}

// pdftotextArgs are the flags that make pdftotext emit table rows in
// content-stream order as Latin-1 text. The caller appends input and "-".
var pdftotextArgs = []string{"-raw", "-enc", "Latin1"}

// commandRunner abstracts process execution for testing.
type commandRunner interface {
	Run(name string, args []string, stdout io.Writer) error
}

// osRunner is the production commandRunner backed by os/exec.
type osRunner struct{}

func (osRunner) Run(name string, args []string, stdout io.Writer) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// DecodeLines decodes Latin-1 converter output and splits it into lines.
// Lines end at "\n", "\r\n", or "\r"; a trailing terminator does not start
// an empty line.
func DecodeLines(raw []byte) ([]string, error) {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding Latin-1 text: %w", err)
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, string(text[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, string(text[start:i]))
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, string(text[start:]))
	}
	return lines, nil
}
