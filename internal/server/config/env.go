package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from AUTHSVC_* environment variables.
// Unset variables leave the corresponding fields untouched, so defaults
// survive a partial environment.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
