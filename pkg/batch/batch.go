/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch conversion runner for X431 log directories. Enumerates input
files, converts each through a bounded worker pool, and aggregates per-file
success/failure results without aborting on individual decode errors.
*/

package batch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/x431-converter/pkg/csvout"
	"github.com/kleascm/x431-converter/pkg/x431"
)

// Options configures a batch run
type Options struct {
	Dir     string            // directory to scan recursively for .x431 files
	Workers int               // worker count, 0 = available CPUs
	Policy  x431.HeaderPolicy // header formatting policy, nil = verbose
	Logger  *logrus.Logger    // logger, nil = standard logger
}

// FileResult records the outcome of converting a single file
type FileResult struct {
	Path       string        `json:"path"`
	OutputPath string        `json:"output_path,omitempty"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
}

// Failed reports whether this file's conversion failed
func (r FileResult) Failed() bool {
	return r.Error != ""
}

// Summary aggregates a whole batch run
type Summary struct {
	SessionID string        `json:"session_id"`
	Dir       string        `json:"dir"`
	Policy    string        `json:"policy"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Files     []FileResult  `json:"files"`
}

// Runner converts every .x431 file under a directory. Each file's parse is
// independent, so files are fanned out to workers with no shared decode state;
// only the result aggregation is synchronized.
type Runner struct {
	opts   Options
	logger *logrus.Logger

	mu      sync.Mutex
	results []FileResult
}

// NewRunner creates a batch runner
func NewRunner(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Policy == nil {
		opts.Policy = x431.NewVerbosePolicy()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{opts: opts, logger: logger}
}

// Run scans the directory and converts all files, returning the aggregated
// summary. Per-file failures are counted, never propagated; only an unusable
// input directory returns an error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	files, err := r.collectFiles()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		SessionID: uuid.New().String(),
		Dir:       r.opts.Dir,
		Policy:    r.opts.Policy.Name(),
		StartedAt: time.Now(),
	}

	r.logger.WithFields(logrus.Fields{
		"session_id": summary.SessionID,
		"files":      len(files),
		"workers":    r.opts.Workers,
		"policy":     summary.Policy,
	}).Info("Batch conversion started")

	paths := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for path := range paths {
				r.record(r.convertOne(workerID, path))
			}
		}(i)
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			close(paths)
			wg.Wait()
			return nil, ctx.Err()
		case paths <- path:
		}
	}
	close(paths)
	wg.Wait()

	// Workers finish out of order; report in path order
	sort.Slice(r.results, func(i, j int) bool { return r.results[i].Path < r.results[j].Path })
	summary.Files = r.results
	for i := range summary.Files {
		if summary.Files[i].Failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	summary.Duration = time.Since(summary.StartedAt)

	r.logger.WithFields(logrus.Fields{
		"session_id": summary.SessionID,
		"succeeded":  summary.Succeeded,
		"failed":     summary.Failed,
		"duration":   summary.Duration,
	}).Info("Batch conversion complete")

	return summary, nil
}

// collectFiles lists all .x431 files under the configured directory, sorted
func (r *Runner) collectFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.opts.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".x431") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.opts.Dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// convertOne decodes a single file and writes its CSV
func (r *Runner) convertOne(workerID int, path string) FileResult {
	start := time.Now()
	result := FileResult{Path: path}

	fields := logrus.Fields{"worker": workerID, "file": filepath.Base(path)}

	parsed, err := x431.ParseFile(path, r.opts.Policy)
	if err != nil {
		result.Error = err.Error()
		result.Duration = time.Since(start)
		r.logger.WithFields(fields).Errorf("Conversion failed: %v", err)
		return result
	}

	outputPath := csvout.DefaultOutputPath(path, r.opts.Policy.Name())
	if err := csvout.Write(outputPath, parsed.Headers, parsed.Rows); err != nil {
		result.Error = err.Error()
		result.Duration = time.Since(start)
		r.logger.WithFields(fields).Errorf("CSV export failed: %v", err)
		return result
	}

	result.OutputPath = outputPath
	result.Rows = len(parsed.Rows)
	result.Columns = len(parsed.Headers)
	result.Duration = time.Since(start)

	fields["rows"] = result.Rows
	fields["columns"] = result.Columns
	r.logger.WithFields(fields).Info("CSV export complete")
	return result
}

// record appends a file result under the aggregation lock
func (r *Runner) record(result FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}
