// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
)

const defaultBinary = "pdftotext"

// PdftotextConverter runs a pdftotext binary installed on the host.
type PdftotextConverter struct {
	binary string
	runner commandRunner
	log    *zap.Logger
}

// NewPdftotextConverter returns a converter that invokes binary, or
// "pdftotext" from PATH when binary is empty. A nil logger disables logging.
func NewPdftotextConverter(binary string, log *zap.Logger) *PdftotextConverter {
	if binary == "" {
		binary = defaultBinary
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PdftotextConverter{binary: binary, runner: osRunner{}, log: log}
}

// Convert runs pdftotext over pdfPath and returns the decoded lines.
func (p *PdftotextConverter) Convert(pdfPath string) ([]string, error) {
	args := make([]string, 0, len(pdftotextArgs)+2)
	args = append(args, pdftotextArgs...)
	args = append(args, pdfPath, "-")

	p.log.Debug("running pdftotext", zap.String("binary", p.binary), zap.Strings("args", args))

	var out bytes.Buffer
	if err := p.runner.Run(p.binary, args, &out); err != nil {
		return nil, fmt.Errorf("converting %s with %s: %w", pdfPath, p.binary, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced empty output for %s", p.binary, pdfPath)
	}

	lines, err := DecodeLines(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pdfPath, err)
	}
	p.log.Debug("pdftotext finished", zap.Int("bytes", out.Len()), zap.Int("lines", len(lines)))
	return lines, nil
}
