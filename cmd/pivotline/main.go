package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/pivotline"
	"github.com/tdewolff/pivotline/internal/host"
	"github.com/tdewolff/pivotline/surfaces/gochart"
	"github.com/tdewolff/pivotline/surfaces/vector"
)

var logger = log.New(os.Stderr, "pivotline: ", 0)

var errNotRendered = errors.New("chart not rendered")

type Render struct {
	Config  string  `short:"c" desc:"Configuration file (YAML)"`
	Output  string  `short:"o" default:"chart.svg" desc:"Output file, format by extension (svg, svgz, png, jpg, pdf)"`
	Width   float64 `short:"W" default:"640" desc:"Container width in pixels"`
	Height  float64 `short:"H" default:"400" desc:"Container height in pixels"`
	DPI     float64 `default:"96" desc:"Resolution of raster output"`
	Backend string  `short:"b" default:"canvas" desc:"Drawing backend (canvas or gochart)"`
	Minify  bool    `short:"m" desc:"Minify SVG output"`
	Input   string  `index:"0" desc:"Query response file (JSON), - for stdin"`
}

type Options struct{}

func main() {
	root := argp.NewCmd(&Render{}, "Pivoted line chart renderer")
	root.AddCmd(&Options{}, "options", "List visualizations and their options")
	root.Parse()
	root.PrintHelp()
}

func newHost() (*host.Host, error) {
	registry := host.NewRegistry()
	if err := pivotline.Register(registry); err != nil {
		return nil, err
	}
	return host.New(registry, logger), nil
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	cfg := pivotline.DefaultConfig()
	if cmd.Config != "" {
		f, err := os.Open(cmd.Config)
		if err != nil {
			return err
		}
		cfg, err = host.LoadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	response, err := host.LoadQueryResponse(r)
	if err != nil {
		return err
	}

	h, err := newHost()
	if err != nil {
		return err
	}

	switch cmd.Backend {
	case "canvas":
		container := vector.New(cmd.Width, cmd.Height, &vector.Options{
			Minify:     cmd.Minify,
			Resolution: canvas.DPI(cmd.DPI),
		})
		if err := update(h, container, response, cfg); err != nil {
			return err
		}
		return container.WriteFile(cmd.Output)
	case "gochart":
		if format := vector.FormatOf(cmd.Output); format != "svg" {
			return fmt.Errorf("gochart backend writes svg, not %q", format)
		}
		container := gochart.New(int(cmd.Width), int(cmd.Height))
		if err := update(h, container, response, cfg); err != nil {
			return err
		}
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := container.Write(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unknown backend %q", cmd.Backend)
}

func update(h *host.Host, container pivotline.Container, response pivotline.QueryResponse, cfg pivotline.Config) error {
	inst, err := h.Mount(pivotline.ID, container, cfg)
	if err != nil {
		return err
	}
	if err := inst.Update(response, cfg); err != nil {
		return err
	} else if 0 < len(h.Errors()) {
		return errNotRendered
	}
	return nil
}

func (cmd *Options) Run() error {
	h, err := newHost()
	if err != nil {
		return err
	}
	for _, def := range h.Registry.Definitions() {
		fmt.Printf("%s\t%s\n", def.ID, def.Label)
		for _, opt := range def.Options {
			fmt.Printf("  %s\t%s\t%s\tdefault %v\n", opt.Name, opt.Type, opt.Label, opt.Default)
		}
	}
	return nil
}
