package config

import "time"

type Server interface {
	Address() string
	ReadHeaderTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	URI() string
	AdminDatabase() string
}
