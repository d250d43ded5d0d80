package config

import "time"

// Default constants for application configuration
const (
	AppName             = "locator"
	DefaultLogLevel     = "info"
	DefaultJSONLog      = false
	DefaultUserAgent    = "LegalPublicRecordsBot/1.0 (+contact: requester)"
	DefaultHTTPTimeout  = 20 * time.Second
	DefaultRequestDelay = 3 * time.Second
	DefaultProgress     = true
	DefaultConfigFile   = "config.yaml"
)

// Environment variables consulted by Load
const (
	EnvUserAgent = "LOCATOR_USER_AGENT"
	EnvProxy     = "LOCATOR_PROXY"
	EnvBaseURL   = "LOCATOR_BASE_URL"
	EnvDelay     = "LOCATOR_DELAY"
)
