// Package constants holds string values shared across configuration and wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Boundary state stores
const (
	StateStorePostgres = "postgres"
	StateStoreRedis    = "redis"
	StateStoreMemory   = "memory"
)

// Operator roles carried in access tokens
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleTracker  = "tracker"
)
