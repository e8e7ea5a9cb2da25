package config

import (
	"strings"

	"github.com/hoppxi/backlight/pkg/backlight"
	"github.com/hoppxi/backlight/pkg/operation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyRoot    = "root"
	KeyBackend = "backend"
	KeyInfo    = "info"
	KeyFormat  = "format"
	KeyVerbose = "verbose"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Root    string
	Backend string
	Info    bool
	Format  string
	Verbose bool
}

// Load resolves settings from flags, then BACKLIGHT_* environment
// variables, then defaults. No config file is consulted.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault(KeyRoot, backlight.SysfsRoot)
	v.SetDefault(KeyBackend, operation.BackendSysfs)
	v.SetDefault(KeyFormat, "json")

	v.SetEnvPrefix("backlight")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyRoot, KeyBackend, KeyInfo, KeyFormat, KeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	return &Settings{
		Root:    v.GetString(KeyRoot),
		Backend: v.GetString(KeyBackend),
		Info:    v.GetBool(KeyInfo),
		Format:  v.GetString(KeyFormat),
		Verbose: v.GetBool(KeyVerbose),
	}, nil
}
