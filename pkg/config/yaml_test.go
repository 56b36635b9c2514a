package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpress/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		original := &config.Config{
			Ignore: []string{"*.bak", "vendor/**"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		assert.Equal(t, original.Ignore, clone.Ignore)

		// Verify modifying clone doesn't affect original
		clone.Ignore[0] = "changed"
		assert.Equal(t, "*.bak", original.Ignore[0])
	})

	t.Run("deep copies Extensions slice", func(t *testing.T) {
		original := &config.Config{
			Extensions: []string{".md", ".markdown"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.Extensions[0] = ".txt"
		assert.Equal(t, ".md", original.Extensions[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			OutDir:       "public",
			Title:        "Docs",
			TabWidth:     4,
			CodeColor:    "w3-red",
			HeadingColor: "w3-text-blue",
			Fragment:     true,
			Extensions:   []string{".md"},
			Ignore:       []string{"*.bak"},
			Stdout:       true,
			Jobs:         4,
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		assert.Equal(t, original.OutDir, clone.OutDir)
		assert.Equal(t, original.Title, clone.Title)
		assert.Equal(t, original.TabWidth, clone.TabWidth)
		assert.Equal(t, original.CodeColor, clone.CodeColor)
		assert.Equal(t, original.HeadingColor, clone.HeadingColor)
		assert.Equal(t, original.Fragment, clone.Fragment)
		assert.Equal(t, original.Stdout, clone.Stdout)
		assert.Equal(t, original.Jobs, clone.Jobs)
		assert.Equal(t, original.Extensions, clone.Extensions)
		assert.Equal(t, original.Ignore, clone.Ignore)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			OutDir:    "public",
			CodeColor: "w3-light-grey",
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "out_dir: public")
		assert.Contains(t, string(data), "code_color: w3-light-grey")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
out_dir: site
title: My Docs
tab_width: 4
fragment: true
ignore:
  - "vendor/**"
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, "site", cfg.OutDir)
		assert.Equal(t, "My Docs", cfg.Title)
		assert.Equal(t, 4, cfg.TabWidth)
		assert.True(t, cfg.Fragment)
		assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("out_dir: [\n"))
		require.Error(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "No Title", cfg.Title)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.Equal(t, "w3-light-grey", cfg.CodeColor)
	assert.False(t, cfg.Fragment)
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		data := config.GenerateTemplate(config.TemplateOptions{})
		assert.Contains(t, string(data), "# mdpress configuration")
		assert.Contains(t, string(data), "# code_color: w3-light-grey")
	})

	t.Run("full parses back", func(t *testing.T) {
		data := config.GenerateTemplate(config.TemplateOptions{Full: true})
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "No Title", cfg.Title)
		assert.Equal(t, 8, cfg.TabWidth)
		assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	})
}
