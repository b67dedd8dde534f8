// Package config resolves schedlab settings from defaults, an optional
// schedlab.yaml, SCHEDLAB_* environment variables, .env files and CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"schedlab/internal/chart"
	"schedlab/internal/logger"
	"schedlab/internal/output"
	"schedlab/internal/report"
)

// EnvPrefix prefixes every environment variable, e.g. SCHEDLAB_CHARTS_DIR.
const EnvPrefix = "SCHEDLAB"

// ConfigName is the base name of the optional config file.
const ConfigName = "schedlab"

// Setting keys.
const (
	KeyDir          = "dir"
	KeyChartsDir    = "charts.dir"
	KeyChartsFormat = "charts.format"
	KeyChartsWidth  = "charts.width"
	KeyChartsHeight = "charts.height"
	KeyOutputTheme  = "output.theme"
	KeyOutputMode   = "output.mode"
	KeyReportStyle  = "report.style"
	KeyReportWidth  = "report.width"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
)

// Defaults.
const (
	DefaultDir          = "."
	DefaultChartsDir    = "charts"
	DefaultChartsFormat = "svg"
	DefaultChartsWidth  = 16.0
	DefaultChartsHeight = 8.0
)

// FlagKeys maps persistent CLI flag names to setting keys.
var FlagKeys = map[string]string{
	"dir":       KeyDir,
	"log-level": KeyLogLevel,
	"log-file":  KeyLogFile,
	"mode":      KeyOutputMode,
	"theme":     KeyOutputTheme,
}

// Config is the resolved configuration.
type Config struct {
	Dir    string       `mapstructure:"dir"`
	Charts ChartsConfig `mapstructure:"charts"`
	Output OutputConfig `mapstructure:"output"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// ChartsConfig controls where and how charts are written.
type ChartsConfig struct {
	Dir    string  `mapstructure:"dir"`
	Format string  `mapstructure:"format"`
	Width  float64 `mapstructure:"width"`  // inches
	Height float64 `mapstructure:"height"` // inches
}

// Size returns the canvas size.
func (c ChartsConfig) Size() (vg.Length, vg.Length) {
	return vg.Length(c.Width) * vg.Inch, vg.Length(c.Height) * vg.Inch
}

// OutputConfig controls console output.
type OutputConfig struct {
	Theme string `mapstructure:"theme"`
	Mode  string `mapstructure:"mode"`
}

// ReportConfig controls markdown rendering.
type ReportConfig struct {
	Style string `mapstructure:"style"`
	Width int    `mapstructure:"width"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDir, DefaultDir)
	v.SetDefault(KeyChartsDir, DefaultChartsDir)
	v.SetDefault(KeyChartsFormat, DefaultChartsFormat)
	v.SetDefault(KeyChartsWidth, DefaultChartsWidth)
	v.SetDefault(KeyChartsHeight, DefaultChartsHeight)
	v.SetDefault(KeyOutputTheme, output.DefaultTheme)
	v.SetDefault(KeyOutputMode, output.ModeAuto.String())
	v.SetDefault(KeyReportStyle, "auto")
	v.SetDefault(KeyReportWidth, report.DefaultWidth)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (or schedlab.yaml from the working directory when
// configFile is empty) into v and returns the resolved, validated settings.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	c.Charts.Format = strings.ToLower(strings.TrimPrefix(c.Charts.Format, "."))
	if !chart.IsFormat(c.Charts.Format) {
		return fmt.Errorf("%s: unsupported chart format %q (want one of %s)",
			KeyChartsFormat, c.Charts.Format, strings.Join(chart.Formats, ", "))
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Charts.Width, c.Charts.Height)
	}
	if _, err := output.ParseMode(c.Output.Mode); err != nil {
		return fmt.Errorf("%s: %w", KeyOutputMode, err)
	}
	if c.Report.Width < 0 {
		return fmt.Errorf("%s must not be negative", KeyReportWidth)
	}
	return nil
}

// LoadDotEnv loads .env from each directory that has one. Variables already
// present in the environment are kept. It returns the files it loaded.
func LoadDotEnv(dirs ...string) ([]string, error) {
	var loaded []string
	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		logger.Debug("Loaded environment file", "path", path)
		loaded = append(loaded, path)
	}
	return loaded, nil
}
