// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if err := bindEnv(env); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// bindEnv binds the prefixed variable of a key and, when registered, its unprefixed aliases.
// The prefixed name wins because viper checks the names in order.
func bindEnv(k string) error {
	aliases, ok := extraEnv[k]
	if !ok {
		return viper.BindEnv(k)
	}

	f := Default[k]
	names := append([]string{f.Env()}, aliases...)
	return viper.BindEnv(append([]string{k}, names...)...)
}
