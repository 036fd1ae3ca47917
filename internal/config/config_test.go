package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/codedoc/internal/model"
)

const sampleSettings = `
[paths]
base_dir = "./project"
output_dir = "out\\docs"
path_style = "Unix"
skip_paths = ["build/cache"]

[files]
ignored_extensions = ["PYC", ".log"]
ignored_files = ["secrets.env"]

[directories]
ignored_directories = [".git", "node_modules"]

[file_specific]
use_file_specific = true
specific_files = ["src/main.py"]

[output]
markdown_file_prefix = "md"
csv_file_prefix = "sheet"

[metrics]
size_unit = "KiB"

[presets]
"backend/api" = ["api/server.py", "api/models.py"]
"v1.2" = ["README.md"]
`

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads every section", func(t *testing.T) {
		settings, err := Load(writeSettings(t, sampleSettings))
		require.NoError(t, err)

		assert.Equal(t, "project", settings.Paths.BaseDir)
		assert.Equal(t, "out/docs", settings.Paths.OutputDir)
		assert.Equal(t, m.PathStyleUnix, settings.Style())
		assert.Equal(t, []string{"build/cache"}, settings.Paths.SkipPaths)
		assert.Equal(t, []string{".pyc", ".log"}, settings.Files.IgnoredExtensions)
		assert.Equal(t, []string{"secrets.env"}, settings.Files.IgnoredFiles)
		assert.Equal(t, []string{".git", "node_modules"}, settings.Directories.IgnoredDirectories)
		assert.True(t, settings.FileSpecific.UseFileSpecific)
		assert.Equal(t, []string{"src/main.py"}, settings.FileSpecific.SpecificFiles)
		assert.Equal(t, "md", settings.Output.MarkdownFilePrefix)
		assert.Equal(t, "sheet", settings.Output.CSVFilePrefix)
		assert.Equal(t, "KiB", settings.Metrics.SizeUnit)
	})

	t.Run("preset names keep slashes and dots", func(t *testing.T) {
		settings, err := Load(writeSettings(t, sampleSettings))
		require.NoError(t, err)

		assert.Equal(t, []string{"backend/api", "v1.2"}, settings.PresetNames())
		assert.Equal(t, []string{"api/server.py", "api/models.py"}, settings.Presets["backend/api"])
	})

	t.Run("missing file is a configuration error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed file is a configuration error", func(t *testing.T) {
		_, err := Load(writeSettings(t, "[paths\nbase_dir = "))
		require.Error(t, err)

		var cfgErr *Error
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("unknown path style is rejected", func(t *testing.T) {
		_, err := Load(writeSettings(t, "[paths]\npath_style = \"mac\"\n"))
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrUnknownPathStyle)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		var cfgErr *Error
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "paths", cfgErr.Section)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("CODEDOC_METRICS_SIZE_UNIT", "bytes")

		settings, err := Load(writeSettings(t, sampleSettings))
		require.NoError(t, err)

		assert.Equal(t, "bytes", settings.Metrics.SizeUnit)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		settings, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, Default(), settings)
	})
}

func TestDefault(t *testing.T) {
	settings := Default()

	assert.Equal(t, ".", settings.Paths.BaseDir)
	assert.Equal(t, "output", settings.Paths.OutputDir)
	assert.Equal(t, m.PathStyleWindows, settings.Style())
	assert.Equal(t, "project", settings.Output.MarkdownFilePrefix)
	assert.Equal(t, "project_sheet", settings.Output.CSVFilePrefix)
	assert.Equal(t, "KB", settings.Metrics.SizeUnit)
	assert.Empty(t, settings.Presets)
	assert.NoError(t, Validate(settings))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"empty output dir", func(s *Settings) { s.Paths.OutputDir = " " }, ErrEmptyOutputDir},
		{"empty markdown prefix", func(s *Settings) { s.Output.MarkdownFilePrefix = "" }, ErrEmptyPrefix},
		{"empty tabular prefix", func(s *Settings) { s.Output.CSVFilePrefix = "" }, ErrEmptyPrefix},
		{"empty size unit", func(s *Settings) { s.Metrics.SizeUnit = "" }, ErrEmptySizeUnit},
		{"bad path style", func(s *Settings) { s.Paths.PathStyle = "dos" }, ErrUnknownPathStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Default()
			tt.mutate(&settings)

			assert.ErrorIs(t, Validate(settings), tt.want)
		})
	}
}
