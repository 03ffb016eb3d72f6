package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by the CLI, e.g.
// SEQFLOW_LOG_LEVEL.
const envPrefix = "SEQFLOW"

// Config holds the settings shared by every run. Values come, in
// increasing precedence, from defaults, the config file, the environment
// (including a .env file) and command-line flags.
type Config struct {
	Log       LogConfig `mapstructure:"log"`
	Separator string    `mapstructure:"separator"`
	Trace     bool      `mapstructure:"trace"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("separator", " ")
	v.SetDefault("trace", false)
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":  "log-level",
	"log.format": "log-format",
	"separator":  "separator",
	"trace":      "trace",
}

// loadConfig resolves the configuration. configFile is optional; envFile is
// loaded only if it exists.
func loadConfig(configFile, envFile string, flags *pflag.FlagSet) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// newLogger builds the CLI logger. Console output is meant for people,
// json for log collectors.
func newLogger(cfg LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	var zl zerolog.Logger
	if cfg.Format == "json" {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true})
	}
	return zl.Level(level).With().Timestamp().Logger()
}

// envFileDefault is the .env file read when --env-file is not given.
func envFileDefault() string {
	if v, ok := os.LookupEnv(envPrefix + "_ENV_FILE"); ok {
		return v
	}
	return ".env"
}
