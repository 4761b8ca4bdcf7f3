// Package config resolves the serve binary's configuration from CLI
// flags or equivalent environment variables, following the teacher's
// viper-based pattern.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// ServeConfig is the resolved configuration for the serve binary.
type ServeConfig struct {
	BinPath  string
	Port     uint16
	Parallel bool
}

// ErrMissingBinPath is returned when no index path was supplied by
// either flag or environment variable.
var ErrMissingBinPath = errors.New("config: --bin (or RTREE_BIN) is required")

// Load reads v after cobra flags have been bound to it and returns a
// validated ServeConfig.
func Load(v *viper.Viper) (ServeConfig, error) {
	cfg := ServeConfig{
		BinPath:  v.GetString("bin"),
		Port:     uint16(v.GetUint("port")),
		Parallel: v.GetBool("parallel"),
	}
	if cfg.BinPath == "" {
		return ServeConfig{}, ErrMissingBinPath
	}
	return cfg, nil
}

// NewViper builds a viper instance bound to the RTREE_BIN, PORT, and
// PARALLEL environment variables, with flags overriding the
// environment and the environment overriding defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("parallel", false)
	v.AutomaticEnv()
	_ = v.BindEnv("bin", "RTREE_BIN")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("parallel", "PARALLEL")
	return v
}
