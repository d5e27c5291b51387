package constant

// Shinigami upstream identifiers and endpoints.
const (
	ShinigamiID      = "3411809758861089969"
	ShinigamiName    = "Shinigami"
	ShinigamiLang    = "id"
	ShinigamiBaseURL = "https://app.shinigami.asia"
	ShinigamiAPIURL  = "https://api.shngm.io"
	ShinigamiCDNURL  = "https://storage.shngm.id"
)

// Upstream request sizing.
const (
	ListPageSize    = 30
	ChapterPageSize = 3000
	// UpstreamTimeoutSeconds bounds every outbound call.
	UpstreamTimeoutSeconds = 30
)
