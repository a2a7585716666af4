package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	phenomd "github.com/tphakala/go-phenomd"
)

// errHelp is returned when --help was requested.
var errHelp = pflag.ErrHelp

// cliConfig is the resolved command configuration.
type cliConfig struct {
	Params   phenomd.BinaryParameters
	QNMTable string
	Format   string
	LogLevel zerolog.Level
	NoSIMD   bool
}

// newFlagSet defines the command-line flags.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("phenomd", pflag.ContinueOnError)
	fs.String(keyConfig, "", "Config file (yaml, json or toml)")
	fs.Float64(keyMass1, defaultMass1, "Primary mass in solar masses")
	fs.Float64(keyMass2, defaultMass2, "Secondary mass in solar masses")
	fs.Float64(keyChi1, defaultChi1, "Primary dimensionless aligned spin")
	fs.Float64(keyChi2, defaultChi2, "Secondary dimensionless aligned spin")
	fs.String(keyQNMTable, "", "CSV QNM table (a,fRD,fdamp); built-in table if empty")
	fs.String(keyFormat, defaultFormat, "Output format: text, json")
	fs.String(keyLogLevel, defaultLogLevel, "Log level: debug, info, warn, error")
	fs.Bool(keyNoSIMD, false, "Disable SIMD kernels")
	return fs
}

// loadConfig resolves configuration from args, PHENOMD_* environment
// variables and an optional config file, in that order of precedence.
func loadConfig(args []string) (*cliConfig, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(keyMass1, defaultMass1)
	v.SetDefault(keyMass2, defaultMass2)
	v.SetDefault(keyChi1, defaultChi1)
	v.SetDefault(keyChi2, defaultChi2)
	v.SetDefault(keyFormat, defaultFormat)
	v.SetDefault(keyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString(keyLogLevel), err)
	}

	format := strings.ToLower(v.GetString(keyFormat))
	if format != formatJSON && format != formatText {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return &cliConfig{
		Params: phenomd.BinaryParameters{
			M1:   v.GetFloat64(keyMass1),
			M2:   v.GetFloat64(keyMass2),
			Chi1: v.GetFloat64(keyChi1),
			Chi2: v.GetFloat64(keyChi2),
		},
		QNMTable: v.GetString(keyQNMTable),
		Format:   format,
		LogLevel: level,
		NoSIMD:   v.GetBool(keyNoSIMD),
	}, nil
}

// isHelp reports whether err came from a --help request.
func isHelp(err error) bool {
	return errors.Is(err, errHelp)
}
