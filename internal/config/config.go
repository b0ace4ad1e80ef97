// Package config loads the scheduler settings from defaults, an optional
// YAML file and WOLF_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of calendar.week_of.
const DateLayout = "2006-01-02"

// EnvPrefix prefixes every environment override, e.g. WOLF_CATALOG_PATH.
const EnvPrefix = "WOLF"

type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Schedule ScheduleConfig `mapstructure:"schedule" yaml:"schedule"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
	Calendar CalendarConfig `mapstructure:"calendar" yaml:"calendar"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// CatalogConfig points at the course record file.
type CatalogConfig struct {
	Path      string `mapstructure:"path" yaml:"path" validate:"required"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
}

type ScheduleConfig struct {
	Title string `mapstructure:"title" yaml:"title" validate:"required"`
}

// ExportConfig is the base directory of relative export paths.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" validate:"required"`
}

type ReportConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
}

// CalendarConfig controls iCalendar export. WeekOf is any date in the
// first week of the term.
type CalendarConfig struct {
	WeekOf    string `mapstructure:"week_of" yaml:"week_of" validate:"required,datetime=2006-01-02"`
	Weeks     int    `mapstructure:"weeks" yaml:"weeks" validate:"gte=1,lte=52"`
	ProductID string `mapstructure:"product_id" yaml:"product_id" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json console"`
}

// CatalogDelimiter returns the catalog delimiter as a rune.
func (c *Config) CatalogDelimiter() rune { return []rune(c.Catalog.Delimiter)[0] }

// ReportDelimiter returns the report delimiter as a rune.
func (c *Config) ReportDelimiter() rune { return []rune(c.Report.Delimiter)[0] }

// FirstWeek parses calendar.week_of.
func (c *Config) FirstWeek() (time.Time, error) {
	return time.ParseInLocation(DateLayout, c.Calendar.WeekOf, time.Local)
}

// ExportPath resolves p against export.dir unless it is absolute.
func (c *Config) ExportPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Export.Dir, p)
}

func setDefaults(v *viper.Viper, now time.Time) {
	v.SetDefault("catalog.path", "courses.txt")
	v.SetDefault("catalog.delimiter", ",")
	v.SetDefault("schedule.title", "My Schedule")
	v.SetDefault("export.dir", ".")
	v.SetDefault("report.delimiter", ",")
	v.SetDefault("calendar.week_of", mondayOf(now).Format(DateLayout))
	v.SetDefault("calendar.weeks", 15)
	v.SetDefault("calendar.product_id", "-//WolfScheduler//EN")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Load reads the configuration. Environment variables override the file,
// which overrides the defaults. An empty path searches ./config and the
// working directory for config.yaml; a missing file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, time.Now())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field against its struct tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Default returns the built in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v, time.Now())
	var cfg Config
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// WriteDefault writes the built in configuration to path as YAML.
// The parent directory is created and the file is replaced atomically.
func WriteDefault(path string) error {
	return Save(path, Default())
}

// Save writes cfg to path as YAML with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".wolfscheduler-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
