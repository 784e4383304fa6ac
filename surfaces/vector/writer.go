package vector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// ErrUnknownFormat is returned for output formats that cannot be written.
var ErrUnknownFormat = errors.New("unknown format")

// ErrNoSurface is returned when writing a container without a surface.
var ErrNoSurface = errors.New("container has no surface")

// Formats are the supported output formats.
var Formats = []string{"svg", "svgz", "png", "jpg", "pdf"}

// FormatOf returns the output format of a filename by its extension.
func FormatOf(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func (c *Container) writer(format string) (canvas.Writer, error) {
	switch format {
	case "svg":
		if c.opts.Minify {
			return minifiedSVG, nil
		}
		return renderers.SVG(), nil
	case "svgz":
		return renderers.SVGZ(), nil
	case "png":
		return renderers.PNG(c.opts.Resolution), nil
	case "jpg", "jpeg":
		return renderers.JPG(c.opts.Resolution), nil
	case "pdf":
		return renderers.PDF(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

func minifiedSVG(w io.Writer, c *canvas.Canvas) error {
	buf := &bytes.Buffer{}
	if err := renderers.SVG()(buf, c); err != nil {
		return err
	}

	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	return m.Minify("image/svg+xml", w, buf)
}

// Write writes the surface in the given format.
func (c *Container) Write(w io.Writer, format string) error {
	if c.surface == nil {
		return ErrNoSurface
	} else if err := c.surface.Err(); err != nil {
		return err
	}

	writer, err := c.writer(strings.ToLower(format))
	if err != nil {
		return err
	}
	return writer(w, c.surface.Canvas())
}

// WriteFile writes the surface to a file, the format is determined by the extension.
func (c *Container) WriteFile(filename string) error {
	format := FormatOf(filename)
	if _, err := c.writer(format); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := c.Write(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
