package config

import "bytes"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value.
	// If false, generates a minimal commented template.
	Full bool
}

// GenerateTemplate creates a configuration file template for `mdpress init`.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate()
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# mdpress configuration
# See: https://github.com/yaklabco/mdpress

# Directory HTML files are written to ("" = alongside the input file)
# out_dir: ""

# Page title for documents without a top-level heading
# title: "No Title"

# Tab stop width used when measuring indentation
# tab_width: 8

# W3.CSS color class for code block panels
# code_color: w3-light-grey

# Optional W3.CSS color class for headings
# heading_color: ""

# Emit body-only HTML without the page head/foot wrapper
# fragment: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template with every setting spelled out.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# mdpress configuration - Full Template
# See: https://github.com/yaklabco/mdpress
#
# This template includes all available settings with their default values.
# Modify as needed.

# Directory HTML files are written to ("" = alongside the input file)
out_dir: ""

# Page title for documents without a top-level heading
title: "No Title"

# Tab stop width used when measuring indentation
tab_width: 8

# W3.CSS color class for code block panels
code_color: w3-light-grey

# Optional W3.CSS color class for headings (e.g. w3-text-red)
heading_color: ""

# Emit body-only HTML without the page head/foot wrapper
fragment: false

# File extensions treated as Markdown
extensions:
  - .md
  - .markdown

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"
`)

	return buf.Bytes()
}
