package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/notestore"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/pipeline"
	"github.com/dgallion1/pdfoutline/internal/render"
	"github.com/spf13/cobra"
)

type convertConfig struct {
	input   string
	out     string
	format  string
	max     int
	root    int
	shallow string
	drop    string
	reverse bool
	push    bool
}

func runConvert(cmd *cobra.Command, cfg convertConfig) error {
	opts := outline.Options{
		Max:     cfg.max,
		Root:    cfg.root,
		Shallow: outline.ShallowPolicy(cfg.shallow),
		Reverse: cfg.reverse,
	}
	if cfg.drop != "" {
		opts.Drop = strings.Split(cfg.drop, ",")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if !render.Formats[cfg.format] {
		return fmt.Errorf("unsupported output format: %s", cfg.format)
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	tree, err := pipeline.Run(f, filepath.Base(cfg.input), opts)
	if err != nil {
		return err
	}

	out, err := render.Render(tree, cfg.format)
	if err != nil {
		return err
	}

	if cfg.out == "" {
		cmd.OutOrStdout().Write(out)
	} else if err := os.WriteFile(cfg.out, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.push {
		baseURL := os.Getenv("NOTESTORE_URL")
		if baseURL == "" {
			return fmt.Errorf("--push requires NOTESTORE_URL to be set")
		}
		client := notestore.NewClient(baseURL, os.Getenv("NOTESTORE_API_KEY"))
		defer client.Close()

		title := strings.TrimSuffix(filepath.Base(cfg.input), filepath.Ext(cfg.input))
		n, err := client.PushTree(cmd.Context(), title, tree)
		if err != nil {
			return fmt.Errorf("push to note store: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "pushed %d notes\n", n)
	}
	return nil
}
