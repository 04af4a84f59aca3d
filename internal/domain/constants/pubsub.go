// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers accepted in storage.driver.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)
