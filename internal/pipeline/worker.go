package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/pdfoutline/internal/extract"
	"github.com/dgallion1/pdfoutline/internal/notestore"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/render"
	"github.com/dgallion1/pdfoutline/internal/style"
)

// Worker processes a single document job.
type Worker struct {
	notes *notestore.Client
	log   *slog.Logger
	opts  outline.Options
	stats *Stats
}

func NewWorker(notes *notestore.Client, log *slog.Logger, opts outline.Options, stats *Stats) *Worker {
	return &Worker{
		notes: notes,
		log:   log,
		opts:  opts,
		stats: stats,
	}
}

// Process runs the full outline pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	fail := func(phase string, err error) {
		log.Error(phase+" failed", "error", err)
		job.AddError(fmt.Sprintf("%s: %s", phase, err))
		job.SetStatus(StatusFailed, phase)
	}

	// Phase 1: Extract styled runs.
	job.SetStatus(StatusExtracting, "extracting styled runs")
	ex, err := extract.ForFile(job.Filename)
	if err != nil {
		fail("extract", err)
		return
	}
	runs, err := ex.Extract(bytes.NewReader(job.fileData), job.Filename)
	if err != nil {
		fail("extract", err)
		return
	}
	log.Info("extracted runs", "runs", len(runs))

	// Phase 2: Classify and build the tree.
	job.SetStatus(StatusBuilding, "classifying styles and building tree")
	table, err := style.Classify(runs)
	if err != nil {
		fail("classify", err)
		return
	}
	tree, err := outline.Build(runs, table, w.opts)
	if err != nil {
		fail("build", err)
		return
	}

	// Phase 3: Render.
	job.SetStatus(StatusRendering, "rendering")
	out, err := render.Render(tree, job.format)
	if err != nil {
		fail("render", err)
		return
	}
	job.SetResult(out)

	// Phase 4: Optional note store push.
	if job.push && w.notes != nil {
		job.SetStatus(StatusPushing, "pushing to note store")
		title := strings.TrimSuffix(job.Filename, filepath.Ext(job.Filename))
		n, err := w.notes.PushTree(ctx, title, tree)
		if err != nil {
			fail("push", err)
			return
		}
		log.Info("pushed to note store", "notes", n)
	}

	job.SetStatus(StatusCompleted, "done")
	w.stats.Record(time.Since(start))
	log.Info("job completed", "duration_ms", time.Since(start).Milliseconds())
}
