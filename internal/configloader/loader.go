// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdpress/internal/logging"
	"github.com/yaklabco/mdpress/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MDPRESS_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdpress.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/mdpress/config.yaml)
//  6. System config (/etc/mdpress/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	// Resolve working directory
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	// Discover config paths
	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	// Handle explicit config path
	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load and merge in order (lowest to highest precedence)

	// 1. System config
	if !opts.IgnoreSystemConfig && paths.System != "" {
		systemCfg, err := loadConfigFile(paths.System)
		if err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		cfg = merge(cfg, systemCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	// 2. User config
	if !opts.IgnoreUserConfig && paths.User != "" {
		userCfg, err := loadConfigFile(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		cfg = merge(cfg, userCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	// 3. Project config
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		projectCfg, err := loadConfigFile(paths.Project)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		cfg = merge(cfg, projectCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	// 4. Explicit config (--config flag)
	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	// 5. Environment variables
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// 6. CLI config (highest precedence)
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Validate final configuration
	validation := Validate(cfg)
	if !validation.Valid() {
		// Return first error
		return nil, &validation.Errors[0]
	}

	// Add validation warnings to result
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	logging.FromContext(ctx).Debug("configuration resolved",
		logging.FieldFiles, result.LoadedFrom)

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, nil
}
