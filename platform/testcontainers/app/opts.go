package app

import (
	"io"

	tc "github.com/you-humble/mongo-probe/platform/testcontainers"
)

type Option func(*Config)

func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

func WithDockerfile(dir, file string) Option {
	return func(c *Config) {
		c.DockerfileDir = dir
		c.Dockerfile = file
	}
}

func WithNetwork(name string) Option {
	return func(c *Config) {
		c.Networks = append(c.Networks, name)
	}
}

func WithEnv(env map[string]string) Option {
	return func(c *Config) {
		for k, v := range env {
			c.Env[k] = v
		}
	}
}

func WithMongoURI(uri string) Option {
	return func(c *Config) {
		c.Env[tc.MongoURIKey] = uri
	}
}

func WithLogOutput(out io.Writer) Option {
	return func(c *Config) {
		c.LogOutput = out
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
