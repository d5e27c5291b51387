// Package constant defines immutable application-level identifiers and provider defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "shinigami"

	// Version is the current application semantic version string.
	Version = "1.0.0"

	// Documentation points to the public project page advertised by the index route.
	Documentation = "https://github.com/shinigami-rest/shinigami"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
