// Package constants holds string values shared between configuration and infra wiring.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys.
const (
	AttrRequestID  = "request_id"
	AttrEventType  = "event_type"
	AttrTargetKind = "target_kind"
	AttrTargetID   = "target_id"
)
