package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/mdpress/pkg/config"
	"github.com/yaklabco/mdpress/pkg/fsutil"
	"github.com/yaklabco/mdpress/pkg/mdhtml"
)

// Runner orchestrates multi-file conversion using an mdhtml.Converter.
type Runner struct {
	// Converter performs the Markdown to HTML conversion.
	Converter *mdhtml.Converter
}

// New creates a new Runner with the given converter.
func New(cv *mdhtml.Converter) *Runner {
	return &Runner{Converter: cv}
}

// Run discovers files under opts.Paths and converts them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Converts files concurrently using a worker pool
//   - Writes HTML output atomically (unless cfg.Stdout is set)
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	// Discover files.
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	// Create channels.
	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, cfg)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to maintain order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	// Check for context error.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker converts files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	cfg *config.Config,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.convertFile(ctx, path, workDir, cfg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertFile reads, converts, and writes a single file.
func (r *Runner) convertFile(ctx context.Context, path, workDir string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.BytesIn = len(content)

	start := time.Now()
	var html []byte
	if cfg.Fragment {
		html = r.Converter.ConvertFragment(content)
	} else {
		html = r.Converter.ConvertDocument(content, cfg.Title)
	}
	outcome.Duration = time.Since(start)
	outcome.BytesOut = len(html)

	if cfg.Stdout {
		outcome.HTML = html
		return outcome
	}

	outPath := OutputPath(path, workDir, cfg.OutDir)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			outcome.Error = fmt.Errorf("create output directory: %w", err)
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(ctx, outPath, html, 0); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}
	outcome.OutPath = outPath

	return outcome
}

// OutputPath computes the HTML output path for a Markdown input path.
// With an empty outDir the .html file lands alongside the input. Otherwise
// the input's position relative to workDir is mirrored under outDir; inputs
// outside workDir fall back to their base name.
func OutputPath(path, workDir, outDir string) string {
	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"

	if outDir == "" {
		return htmlPath
	}

	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(workDir, outDir)
	}

	rel, err := filepath.Rel(workDir, htmlPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(htmlPath)
	}

	return filepath.Join(outDir, rel)
}
