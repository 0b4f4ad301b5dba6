package main

import (
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ICONSIGN_NID.
const EnvPrefix = "ICONSIGN"

const (
	flagConfig     = "config"
	flagEndpoint   = "endpoint"
	flagNID        = "nid"
	flagVersion    = "version"
	flagStepLimit  = "step-limit"
	flagLogLevel   = "log-level"
	flagLogJSON    = "log-json"
	flagPrivateKey = "private-key"
)

const (
	DefaultEndpoint  = "https://api.icon.community/api/v3"
	DefaultNID       = "0x1"
	DefaultVersion   = "0x3"
	DefaultStepLimit = "0x186a0"
	DefaultLogLevel  = "info"
)

// Config is the resolved configuration: flags over environment over config file over defaults.
type Config struct {
	Endpoint  string
	NID       string
	Version   string
	StepLimit string
	LogLevel  string
	LogJSON   bool
}

func registerConfigFlags(flags *pflag.FlagSet) {
	flags.String(flagConfig, "", "path to a config file (yaml, toml or json)")
	flags.String(flagEndpoint, DefaultEndpoint, "JSON-RPC endpoint the signed request is meant for")
	flags.String(flagNID, DefaultNID, "network id")
	flags.String(flagVersion, DefaultVersion, "transaction version")
	flags.String(flagStepLimit, DefaultStepLimit, "step limit")
	flags.String(flagLogLevel, DefaultLogLevel, "log level (trace, debug, info, warn, error, disabled)")
	flags.Bool(flagLogJSON, false, "emit logs as JSON")
	flags.String(flagPrivateKey, "", "hex private key (prefer the "+EnvPrefix+"_PRIVATE_KEY environment variable)")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) Config {
	return Config{
		Endpoint:  v.GetString(flagEndpoint),
		NID:       v.GetString(flagNID),
		Version:   v.GetString(flagVersion),
		StepLimit: v.GetString(flagStepLimit),
		LogLevel:  v.GetString(flagLogLevel),
		LogJSON:   v.GetBool(flagLogJSON),
	}
}

func newLogger(cfg Config, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	opts := []log.Option{log.LevelOption(level), log.ColorOption(false)}
	if cfg.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...).With(log.ModuleKey, "iconsign"), nil
}
