package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Path string // configuration directory holding the root module

	PublicRegistry bool   // query the public registry instead of a private one
	Address        string // registry host, e.g. "app.terraform.io"
	Organization   string
	Token          string // bearer token, private mode only
	Strict         bool   // fail private-namespace sources missing from the registry

	LogFormat string
	LogLevel  string

	// RegistryBaseURL overrides the https://<Address> request base. Only
	// tests set it.
	RegistryBaseURL string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Organization == "" {
		return nil, errors.New("Organization is a required configuration field and cannot be empty")
	}
	if cfg.Address == "" {
		return nil, errors.New("Address is a required configuration field and cannot be empty")
	}
	if !cfg.PublicRegistry && cfg.Token == "" {
		return nil, errors.New("Token is required when querying a private registry")
	}

	return &cfg, nil
}
