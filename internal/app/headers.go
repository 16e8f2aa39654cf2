package app

// Header names shared by the client transport and the server middlewares.
const (
	// AccessKeyHeader carries the static API key.
	AccessKeyHeader = "X-API-Key"

	// TraceIDHeader correlates a client request with server log entries.
	TraceIDHeader = "X-Trace-ID"

	// BypassHeader suppresses the interstitial page some tunneling proxies
	// (ngrok) inject in front of the API. Sent with BypassHeaderValue.
	BypassHeader      = "ngrok-skip-browser-warning"
	BypassHeaderValue = "true"

	// CollectionPath is the path of the student collection resource.
	CollectionPath = "/mahasiswa"
)
