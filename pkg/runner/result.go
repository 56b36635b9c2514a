package runner

import "time"

// FileOutcome records the result of converting a single file.
type FileOutcome struct {
	// Path is the input file path that was processed.
	Path string

	// OutPath is the path the HTML was written to.
	// Empty when output went to stdout or the file errored.
	OutPath string

	// HTML holds the converted output when it was not written to a file.
	HTML []byte

	// BytesIn is the size of the Markdown input.
	BytesIn int

	// BytesOut is the size of the HTML output.
	BytesOut int

	// Duration is the time spent converting (excluding IO).
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files successfully converted.
	FilesConverted int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BytesIn is the total Markdown bytes read.
	BytesIn int64

	// BytesOut is the total HTML bytes produced.
	BytesOut int64

	// Duration is the total conversion time across all files.
	Duration time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesConverted++
	r.Stats.BytesIn += int64(outcome.BytesIn)
	r.Stats.BytesOut += int64(outcome.BytesOut)
	r.Stats.Duration += outcome.Duration
}
