package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chart.svg", "chart.png", "chart.pdf"} {
		t.Run(name, func(t *testing.T) {
			cmd := &Render{
				Config:  "testdata/config.yaml",
				Output:  filepath.Join(dir, name),
				Width:   640,
				Height:  400,
				DPI:     96,
				Backend: "canvas",
				Input:   "testdata/orders.json",
			}
			test.Error(t, cmd.Run())

			info, err := os.Stat(cmd.Output)
			test.Error(t, err)
			test.That(t, 0 < info.Size(), "empty output")
		})
	}
}

func TestRenderGoChart(t *testing.T) {
	cmd := &Render{
		Output:  filepath.Join(t.TempDir(), "chart.svg"),
		Width:   640,
		Height:  400,
		Backend: "gochart",
		Input:   "testdata/orders.json",
	}
	test.Error(t, cmd.Run())

	b, err := os.ReadFile(cmd.Output)
	test.Error(t, err)
	test.T(t, bytes.Count(b, []byte("<circle")), 15)

	cmd.Output = filepath.Join(t.TempDir(), "chart.png")
	test.That(t, cmd.Run() != nil, "gochart only writes svg")
}

func TestRenderErrors(t *testing.T) {
	cmd := &Render{
		Output:  filepath.Join(t.TempDir(), "chart.svg"),
		Width:   640,
		Height:  400,
		Backend: "canvas",
		Input:   "testdata/unpivoted.json",
	}
	test.That(t, errors.Is(cmd.Run(), errNotRendered))

	cmd.Input = "testdata/orders.json"
	cmd.Backend = "ascii"
	test.That(t, cmd.Run() != nil, "unknown backend")
}
