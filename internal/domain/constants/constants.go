package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for order events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types published to Pub/Sub.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Firebase topic prefixes; devices subscribe to shop-<shopID> or user-<userID>.
const (
	TopicShopPrefix = "shop-"
	TopicUserPrefix = "user-"
)
