package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/avairo/tplcheck/internal/check"
	"github.com/google/uuid"
)

// ErrValidationFailed reports that at least one check failed. The reporter
// has already rendered the diagnostics when Run returns it, so callers map
// it to an exit code without printing anything further.
var ErrValidationFailed = errors.New("validation failed")

// Reporter renders pipeline progress and stage diagnostics.
type Reporter interface {
	Begin()
	StageStart(num int, label string)
	StagePass(msg string)
	StageFail(msg string)
	SchemaErrors(errs []check.SchemaError)
	IconErrors(errs []check.IconError)
	UnusedIcons(names []string)
	Done()
}

// Runner executes the validation pipeline over the documents at its paths:
// loading, format check, duplicate-ID check, schema check, icon check.
// The first failing stage ends the run; there is no retry and no partial
// success.
type Runner struct {
	paths    catalog.Paths
	reporter Reporter
	observer Observer
	runID    string
}

// NewRunner wires a runner for one invocation.
func NewRunner(paths catalog.Paths, reporter Reporter, observers ...Observer) *Runner {
	return &Runner{
		paths:    paths,
		reporter: reporter,
		observer: observerOrNoop(observers),
		runID:    uuid.NewString(),
	}
}

// Run drives the stages in order and returns nil only when every check
// passes. Load and schema-compilation failures come back wrapped; check
// failures come back as ErrValidationFailed.
func (r *Runner) Run(ctx context.Context) error {
	r.reporter.Begin()

	// Stage 1: load both documents and the icon directory listing.
	r.reporter.StageStart(1, "Loading files...")
	start := time.Now()
	doc, schema, icons, err := r.load()
	if err != nil {
		r.observe(ctx, "loading", start, 0, err)
		r.reporter.StageFail(err.Error())
		return err
	}
	r.observe(ctx, "loading", start, 0, nil)
	r.reporter.StagePass("Files loaded")

	// Stage 2: the catalog must be a list of objects.
	r.reporter.StageStart(2, "Validating JSON format...")
	start = time.Now()
	ok, reason := check.Format(doc)
	if !ok {
		r.observe(ctx, "format", start, 1, nil)
		r.reporter.StageFail("JSON format validation failed: " + reason)
		return ErrValidationFailed
	}
	r.observe(ctx, "format", start, 0, nil)
	r.reporter.StagePass("JSON format is valid!")

	raw := doc.([]any)
	entries := catalog.ParseEntries(raw)

	// Stage 3: ids must be unique across the catalog.
	r.reporter.StageStart(3, "Checking for duplicate IDs...")
	start = time.Now()
	dupes := check.DuplicateIDs(entries)
	if len(dupes) > 0 {
		r.observe(ctx, "duplicates", start, len(dupes), nil)
		r.reporter.StageFail("Found duplicate IDs: " + strings.Join(dupes, ", "))
		return ErrValidationFailed
	}
	r.observe(ctx, "duplicates", start, 0, nil)
	r.reporter.StagePass("No duplicate IDs found!")

	// Stage 4: every entry must conform to the item schema.
	r.reporter.StageStart(4, "Validating JSON schema...")
	start = time.Now()
	schemaErrs, err := check.Schema(raw, entries, schema)
	if err != nil {
		r.observe(ctx, "schema", start, 0, err)
		r.reporter.StageFail(err.Error())
		return err
	}
	if len(schemaErrs) > 0 {
		r.observe(ctx, "schema", start, len(schemaErrs), nil)
		r.reporter.StageFail(fmt.Sprintf("Found %d schema validation errors:", len(schemaErrs)))
		r.reporter.SchemaErrors(schemaErrs)
		return ErrValidationFailed
	}
	r.observe(ctx, "schema", start, 0, nil)
	r.reporter.StagePass("Schema validation passed!")

	// Stage 5: every icon reference must resolve to a file. Unused icons
	// are reported first and never fail the run.
	r.reporter.StageStart(5, "Validating icon files...")
	start = time.Now()
	iconErrs := check.Icons(entries, icons)
	if unused := check.UnusedIcons(entries, icons); len(unused) > 0 {
		r.reporter.UnusedIcons(unused)
	}
	if len(iconErrs) > 0 {
		r.observe(ctx, "icons", start, len(iconErrs), nil)
		r.reporter.StageFail(fmt.Sprintf("Found %d icon validation errors:", len(iconErrs)))
		r.reporter.IconErrors(iconErrs)
		return ErrValidationFailed
	}
	r.observe(ctx, "icons", start, 0, nil)
	r.reporter.StagePass("All icon files are valid!")

	r.reporter.Done()
	return nil
}

func (r *Runner) load() (any, catalog.Schema, *catalog.IconSet, error) {
	doc, err := catalog.LoadDocument(r.paths.Catalog)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	schema, err := catalog.LoadSchema(r.paths.Schema)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading schema: %w", err)
	}
	icons, err := catalog.LoadIconSet(r.paths.IconDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading icons: %w", err)
	}
	return doc, schema, icons, nil
}

func (r *Runner) observe(ctx context.Context, stage string, start time.Time, violations int, err error) {
	r.observer.ObserveStage(ctx, StageEvent{
		RunID:      r.runID,
		Stage:      stage,
		Duration:   time.Since(start),
		Success:    err == nil && violations == 0,
		Violations: violations,
		Err:        err,
	})
}
