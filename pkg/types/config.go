// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SourceConfig locates the bibliographic source document.
type SourceConfig struct {
	// Path is the filesystem path to the JSON source document.
	Path string `json:"path" yaml:"path"`

	// Key is the top-level field holding the record array (default "references").
	// Exports are keyed under the same field name.
	Key string `json:"key" yaml:"key"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Key, validation.Required),
	)
}

// DisplayConfig holds presentation-support settings.
type DisplayConfig struct {
	// MaxShown caps how many results are shown per query (0 = no cap).
	// The cap is display-only: the stored result list is never truncated.
	MaxShown int `json:"max_shown" yaml:"max_shown"`
}

// Validate validates the display configuration.
func (c *DisplayConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxShown, validation.Min(0)),
	)
}

// ServerConfig holds HTTP server configuration for the serve command.
type ServerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// Address returns the HTTP server listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// Config groups all litsearch configuration.
type Config struct {
	Source  SourceConfig  `json:"source" yaml:"source"`
	Display DisplayConfig `json:"display" yaml:"display"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// Validate validates the full configuration.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
