// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTitle    = "title"
	FieldOutDir   = "out_dir"
	FieldFragment = "fragment"
	FieldJobs     = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesConverted  = "files_converted"
	FieldFilesErrored    = "files_errored"
	FieldBytesIn         = "bytes_in"
	FieldBytesOut        = "bytes_out"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
