// Package provider manages the built-in manga providers.
package provider

import (
	"strings"

	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/provider/shinigami"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/spf13/viper"
)

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   constant.ShinigamiID,
			Name: constant.ShinigamiName,
			CreateSource: func() (source.Source, error) {
				return shinigami.FromConfig(), nil
			},
		},
	}
}

// Get finds a provider by name, ignoring case.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Default returns the provider selected by sources.default.
func Default() (*Provider, bool) {
	names := viper.GetStringSlice(key.DefaultSources)
	if len(names) == 0 {
		return Get(constant.ShinigamiName)
	}
	return Get(names[0])
}
