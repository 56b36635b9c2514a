package configloader

import "github.com/yaklabco/mdpress/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.Title != "" {
		result.Title = override.Title
	}
	if override.TabWidth != 0 {
		result.TabWidth = override.TabWidth
	}
	if override.CodeColor != "" {
		result.CodeColor = override.CodeColor
	}
	if override.HeadingColor != "" {
		result.HeadingColor = override.HeadingColor
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans: false is the zero value, so only true can override.
	// CLI --fragment will override, but a config file cannot unset it.
	if override.Fragment {
		result.Fragment = override.Fragment
	}
	if override.Stdout {
		result.Stdout = override.Stdout
	}

	// Slices: override replaces base entirely if non-nil
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
