package gtts

import (
	"net/http"
)

type Config struct {
	url string
	tld string

	language string
	slow     bool

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithTLD(tld string) Option {
	return func(c *Config) {
		c.tld = tld
	}
}

func WithLanguage(language string) Option {
	return func(c *Config) {
		c.language = language
	}
}

func WithSlow(slow bool) Option {
	return func(c *Config) {
		c.slow = slow
	}
}
