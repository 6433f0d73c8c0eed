package testcontainers

// Probe service environment, as seen from inside the app container.
const (
	AppPort = "8080"

	ServerAddressKey = "SERVER_ADDRESS"
	MongoURIKey      = "MONGODB_URI"
	LoggerLevelKey   = "LOGGER_LEVEL"
	LoggerAsJSONKey  = "LOGGER_AS_JSON"
)

// MongoDB container constants
const (
	MongoNetworkAlias = "mongo"
	MongoPort         = "27017"
	MongoImage        = "mongo:8.0"
)
