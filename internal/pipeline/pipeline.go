// Package pipeline wires extraction, classification, and tree building into
// a single synchronous document run, and hosts the batch job machinery for
// serve mode.
package pipeline

import (
	"fmt"
	"io"

	"github.com/dgallion1/pdfoutline/internal/extract"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/style"
)

// Run executes the full pipeline for one document: extract styled runs,
// classify sizes into levels, build the tree. The run sequence is
// materialized once; classification needs global frequency statistics
// before any structure can be built.
func Run(r io.Reader, filename string, opts outline.Options) (*outline.Node, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ex, err := extract.ForFile(filename)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}
	runs, err := ex.Extract(r, filename)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	table, err := style.Classify(runs)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", filename, err)
	}

	return outline.Build(runs, table, opts)
}
