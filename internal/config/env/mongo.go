package envconfig

import (
	"github.com/caarlos0/env/v11"
)

const adminDatabase = "admin"

type mongoEnv struct {
	URI string `env:"MONGODB_URI,required,notEmpty"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) URI() string { return cfg.raw.URI }

// AdminDatabase is where the ping command is sent.
func (cfg *mongo) AdminDatabase() string { return adminDatabase }
