package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpress/pkg/config"
)

// envVarPrefix is the prefix for all mdpress environment variables.
const envVarPrefix = "MDPRESS_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"OUT_DIR":       {field: "out_dir", typ: envTypeString},
	"TITLE":         {field: "title", typ: envTypeString},
	"TAB_WIDTH":     {field: "tab_width", typ: envTypeInt},
	"CODE_COLOR":    {field: "code_color", typ: envTypeString},
	"HEADING_COLOR": {field: "heading_color", typ: envTypeString},
	"FRAGMENT":      {field: "fragment", typ: envTypeBool},
	"JOBS":          {field: "jobs", typ: envTypeInt},
	"EXTENSIONS":    {field: "extensions", typ: envTypeSlice},
	"IGNORE":        {field: "ignore", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDPRESS_ (e.g., MDPRESS_OUT_DIR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "out_dir":
		cfg.OutDir = value
	case "title":
		cfg.Title = value
	case "code_color":
		cfg.CodeColor = value
	case "heading_color":
		cfg.HeadingColor = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fragment":
		cfg.Fragment = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "tab_width":
		cfg.TabWidth = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDPRESS_OUT_DIR":       "Output directory for HTML files",
		"MDPRESS_TITLE":         "Page title for full-document output",
		"MDPRESS_TAB_WIDTH":     "Tab stop width when measuring indentation",
		"MDPRESS_CODE_COLOR":    "W3.CSS color class for code block panels",
		"MDPRESS_HEADING_COLOR": "W3.CSS color class for headings",
		"MDPRESS_FRAGMENT":      "Emit body-only HTML: true or false",
		"MDPRESS_JOBS":          "Number of parallel workers (0 = auto)",
		"MDPRESS_EXTENSIONS":    "Comma-separated list of Markdown extensions",
		"MDPRESS_IGNORE":        "Comma-separated list of ignore patterns",
	}
}
