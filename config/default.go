// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/color"
	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/style"
	"github.com/spf13/viper"
)

// descriptionWidth is the column at which field descriptions are wrapped when printed.
const descriptionWidth = 72

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

// extraEnv lists unprefixed environment variables honoured for a key, for compatibility with common hosting platforms.
var extraEnv = map[string][]string{
	key.ServerPort: {"PORT"},
}

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ServerHost, "", "Interface to listen on. Empty means all interfaces")
	register(key.ServerPort, 3000, "Port the REST API listens on.\nThe PORT environment variable is honoured as well")
	register(key.ServerShutdownTimeout, 10, "Seconds to wait for in-flight requests on shutdown")
	register(key.ServerCORSOrigin, "*", "Value of the Access-Control-Allow-Origin response header")
	register(key.DefaultSources, []string{"shinigami"}, "Provider used to serve requests.\nOnly the first entry is used")
	register(key.ProviderBaseURL, constant.ShinigamiBaseURL, "Public site of the provider. Used for Origin/Referer headers and browsable URLs")
	register(key.ProviderAPIURL, constant.ShinigamiAPIURL, "Root of the provider JSON API")
	register(key.ProviderCDNURL, constant.ShinigamiCDNURL, "Root of the provider image CDN, used when a page list carries no base URL")
	register(key.UpstreamTimeout, constant.UpstreamTimeoutSeconds, "Seconds before an outbound call to the provider is abandoned")
	register(key.UpstreamTLSFingerprint, false, "Use a Chrome TLS fingerprint for outbound calls.\nEnable when the provider sits behind an anti-bot gateway")
	register(key.UpstreamListPageSize, constant.ListPageSize, "Page size requested from the provider for manga lists")
	register(key.UpstreamChapterPageSize, constant.ChapterPageSize, "Page size requested from the provider for chapter lists")
	register(key.ImagePassthroughContentType, false, "Forward the upstream Content-Type of proxied images instead of always answering image/jpeg")
	register(key.LogsWrite, false, "Write logs to a dated file in the logs directory instead of stderr")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsRequests, true, "Log one line per handled HTTP request")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when printing help or version")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"wrap":     func(s string) string { return wordwrap.String(s, descriptionWidth) },
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
