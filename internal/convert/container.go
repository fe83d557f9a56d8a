// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/jep106/internal/container"
)

const (
	// DefaultImage is the container image providing pdftotext.
	DefaultImage = "minidocks/poppler:latest"
	// inputMount is where the PDF's directory is mounted inside the container.
	inputMount = "/input"
)

// ContainerConverter runs pdftotext inside a container image. It depends
// on a container.Runtime (docker or podman) injected at construction time.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
	log     *zap.Logger
}

// NewContainerConverter creates a converter that uses rt to run image, or
// DefaultImage when image is empty. It verifies that the image exists
// locally before returning.
func NewContainerConverter(rt container.Runtime, image string, log *zap.Logger) (*ContainerConverter, error) {
	if image == "" {
		image = DefaultImage
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image, log: log}, nil
}

// Convert mounts the directory holding pdfPath read-only, runs pdftotext
// on it inside the container, and returns the decoded lines.
func (c *ContainerConverter) Convert(pdfPath string) ([]string, error) {
	abs, err := filepath.Abs(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", pdfPath, err)
	}

	args := make([]string, 0, len(pdftotextArgs)+3)
	args = append(args, defaultBinary)
	args = append(args, pdftotextArgs...)
	args = append(args, inputMount+"/"+filepath.Base(abs), "-")

	spec := container.RunSpec{
		Image:   c.image,
		Volumes: []string{filepath.Dir(abs) + ":" + inputMount + ":ro"},
		Args:    args,
	}
	c.log.Debug("running pdftotext container",
		zap.String("runtime", c.runtime.Name()),
		zap.String("image", c.image),
		zap.Strings("volumes", spec.Volumes))

	var out bytes.Buffer
	if err := c.runtime.Run(spec, nil, &out); err != nil {
		return nil, fmt.Errorf("converting %s in %s: %w", pdfPath, c.image, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("pdftotext produced empty output for %s", pdfPath)
	}

	lines, err := DecodeLines(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", pdfPath, err)
	}
	return lines, nil
}
