package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/barstatus/internal/clock"
	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/metric"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName       = "barstatus"
	configName    = "config"
	envPrefix     = "BARSTATUS"
	envConfigFile = envPrefix + "_CONFIG"
)

const DefaultLogLevel = LogLevelWarning

type Config struct {
	LogLevel LogLevel       `mapstructure:"log_level"`
	Debug    bool           `mapstructure:"debug"`
	Verbose  bool           `mapstructure:"verbose"`
	Wireless WirelessConfig `mapstructure:"wireless"`
	Zones    []clock.Zone   `mapstructure:"zones"`
	Metric   MetricConfig   `mapstructure:"metric"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type WirelessConfig struct {
	Interface string `mapstructure:"interface"`
}

type MetricConfig struct {
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("wireless.interface", "wlp3s0")
	v.SetDefault("zones", []map[string]any{
		{"label": "TPE", "zone": "Asia/Taipei"},
		{"label": "SFO", "zone": "America/Los_Angeles"},
		{"label": "NYC", "zone": "America/New_York"},
	})
	v.SetDefault("metric.url", "")
	v.SetDefault("metric.secret", "")
	v.SetDefault("metric.timeout", "10s")
}

// Load reads configuration from flags, environment and the config file,
// in that order of precedence. args excludes the program name.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	configFile := fs.String("config", "", "Path to the config file")
	fs.String("log-level", "", "Log level (debug, info, warning, error)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{"log_level": "log-level", "debug": "debug", "verbose": "verbose"} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	explicit := *configFile
	if explicit == "" {
		explicit = os.Getenv(envConfigFile)
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName(configName)
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}
	cfg.File = v.ConfigFileUsed()

	// Shortcut flags win over the configured level
	if cfg.Debug {
		cfg.LogLevel = LogLevelDebug
	} else if cfg.Verbose {
		cfg.LogLevel = LogLevelInfo
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return append(dirs, filepath.Join("/etc", appName))
}

// Validate checks the loaded values. Zone ids are resolved later, when
// the clock provider is built.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !c.LogLevel.IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, string(c.LogLevel))
	}
	if c.Wireless.Interface == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "wireless.interface must not be empty")
	}
	if len(c.Zones) == 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "at least one zone is required")
	}
	for _, z := range c.Zones {
		if z.Name == "" {
			return errFactory.WithData(errors.ErrInvalidZone, z.Label)
		}
	}
	if err := c.MetricConfig().Validate(); err != nil {
		return errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	return nil
}

// MetricConfig returns the refresher settings. The refresh interval is
// fixed.
func (c *Config) MetricConfig() metric.Config {
	cfg := metric.DefaultConfig()
	cfg.URL = c.Metric.URL
	cfg.Secret = c.Metric.Secret
	cfg.Timeout = c.Metric.Timeout
	return cfg
}
