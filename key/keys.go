// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// HTTP Server - these keys govern the listener and cross-origin policy of the REST facade.
const (
	ServerHost            = "server.host"
	ServerPort            = "server.port"
	ServerShutdownTimeout = "server.shutdown_timeout"
	ServerCORSOrigin      = "server.cors_origin"
)

// Provider Source Identifiers - these keys manage the selection of the upstream provider.
const (
	DefaultSources = "sources.default"
)

// Provider Endpoints - these keys locate the upstream site, API and CDN.
const (
	ProviderBaseURL = "provider.base_url"
	ProviderAPIURL  = "provider.api_url"
	ProviderCDNURL  = "provider.cdn_url"
)

// Upstream Requests - these keys tune outbound calls to the provider.
const (
	UpstreamTimeout         = "upstream.timeout"
	UpstreamTLSFingerprint  = "upstream.tls_fingerprint"
	UpstreamListPageSize    = "upstream.list_page_size"
	UpstreamChapterPageSize = "upstream.chapter_page_size"
)

// Image Proxy
const (
	ImagePassthroughContentType = "image.passthrough_content_type"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite    = "logs.write"
	LogsLevel    = "logs.level"
	LogsJson     = "logs.json"
	LogsRequests = "logs.requests"
)

// CLI Execution Environment - these flags and settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of CLI symbols.
const (
	IconsVariant = "icons.variant"
)
