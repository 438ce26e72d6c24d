// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers for audit events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session revocation store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
