// Package config loads the settings file consumed by the encode/decode engine.
//
// Settings are read once per run and handed around by value; nothing in the
// engine mutates them.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/codedoc/internal/model"
)

// ErrInvalidConfig marks a missing or malformed settings file or section.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default configuration values.
const (
	defaultOutputDir      = "output"
	defaultMarkdownPrefix = "project"
	defaultTabularPrefix  = "project_sheet"
	defaultSizeUnit       = "KB"
	envPrefix             = "CODEDOC"
	keyDelimiter          = "::"
)

// Error is a fatal configuration problem tied to a settings section.
type Error struct {
	Section string
	Err     error
}

func (e *Error) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}

	return fmt.Sprintf("config [%s]: %v", e.Section, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidConfig for every configuration error.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Settings is the parsed settings file.
type Settings struct {
	Paths        PathsConfig         `mapstructure:"paths"`
	Files        FilesConfig         `mapstructure:"files"`
	Directories  DirectoriesConfig   `mapstructure:"directories"`
	FileSpecific FileSpecificConfig  `mapstructure:"file_specific"`
	Output       OutputConfig        `mapstructure:"output"`
	Metrics      MetricsConfig       `mapstructure:"metrics"`
	Presets      map[string][]string `mapstructure:"presets"`
}

// PathsConfig holds the [paths] section.
type PathsConfig struct {
	BaseDir   string   `mapstructure:"base_dir"`
	OutputDir string   `mapstructure:"output_dir"`
	PathStyle string   `mapstructure:"path_style"`
	SkipPaths []string `mapstructure:"skip_paths"`
}

// FilesConfig holds the [files] section.
type FilesConfig struct {
	IgnoredExtensions []string `mapstructure:"ignored_extensions"`
	IgnoredFiles      []string `mapstructure:"ignored_files"`
}

// DirectoriesConfig holds the [directories] section.
type DirectoriesConfig struct {
	IgnoredDirectories []string `mapstructure:"ignored_directories"`
}

// FileSpecificConfig holds the [file_specific] section.
type FileSpecificConfig struct {
	UseFileSpecific bool     `mapstructure:"use_file_specific"`
	SpecificFiles   []string `mapstructure:"specific_files"`
}

// OutputConfig holds the [output] section.
type OutputConfig struct {
	MarkdownFilePrefix string `mapstructure:"markdown_file_prefix"`
	CSVFilePrefix      string `mapstructure:"csv_file_prefix"`
}

// MetricsConfig holds the [metrics] section.
type MetricsConfig struct {
	SizeUnit string `mapstructure:"size_unit"`
}

// Style returns the configured path style.
func (s Settings) Style() m.PathStyle {
	return m.ParsePathStyle(s.Paths.PathStyle)
}

// PresetNames returns the preset names in a stable order.
func (s Settings) PresetNames() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Default returns the settings used when no settings file is given.
func Default() Settings {
	settings, err := decode(newViper())
	if err != nil {
		// defaults alone always decode
		panic(err)
	}

	return settings
}

// Load reads the settings file at path. An optional .env file in the working
// directory is loaded first so CODEDOC_* variables can override values.
// An empty path yields the defaults plus environment overrides.
func Load(path string) (Settings, error) {
	_ = godotenv.Load()

	v := newViper()

	if path != "" {
		v.SetConfigFile(path)

		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}

		if err := v.ReadInConfig(); err != nil {
			return Settings{}, &Error{Err: fmt.Errorf("read %s: %w", path, err)}
		}
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(key("paths", "base_dir"), ".")
	v.SetDefault(key("paths", "output_dir"), defaultOutputDir)
	v.SetDefault(key("paths", "path_style"), string(m.PathStyleWindows))
	v.SetDefault(key("paths", "skip_paths"), []string{})

	v.SetDefault(key("files", "ignored_extensions"), []string{})
	v.SetDefault(key("files", "ignored_files"), []string{})

	v.SetDefault(key("directories", "ignored_directories"), []string{".git"})

	v.SetDefault(key("file_specific", "use_file_specific"), false)
	v.SetDefault(key("file_specific", "specific_files"), []string{})

	v.SetDefault(key("output", "markdown_file_prefix"), defaultMarkdownPrefix)
	v.SetDefault(key("output", "csv_file_prefix"), defaultTabularPrefix)

	v.SetDefault(key("metrics", "size_unit"), defaultSizeUnit)
}

func key(parts ...string) string {
	return strings.Join(parts, keyDelimiter)
}

func decode(v *viper.Viper) (Settings, error) {
	var settings Settings

	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, &Error{Err: fmt.Errorf("unmarshal: %w", err)}
	}

	settings = normalize(settings)

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
