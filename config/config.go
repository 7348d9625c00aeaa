/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tessera.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the tessera configuration.
type Config struct {
	// Name is the design system name written into exports.
	Name string `yaml:"name" json:"name"`

	// Prefix is the CSS custom property prefix.
	Prefix string `yaml:"prefix" json:"prefix" validate:"omitempty,excludesall=;{}"`

	Storage StorageConfig `yaml:"storage" json:"storage"`
	Export  ExportConfig  `yaml:"export" json:"export"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// StorageConfig selects where snapshots are persisted.
type StorageConfig struct {
	// Driver is one of file, sqlite, memory.
	Driver string `yaml:"driver" json:"driver" validate:"omitempty,oneof=file sqlite memory"`

	// Path is the directory (file) or database file (sqlite).
	Path string `yaml:"path" json:"path" validate:"required_unless=Driver memory"`

	// Quota caps persisted bytes. Zero is unlimited.
	Quota int64 `yaml:"quota" json:"quota" validate:"gte=0"`
}

// ExportConfig holds defaults for `tessera export`.
type ExportConfig struct {
	OutDir  string   `yaml:"outDir" json:"outDir"`
	Formats []string `yaml:"formats" json:"formats"`

	// Include limits exported global tokens to paths matching these globs,
	// matched against slash-joined paths such as "color/**".
	Include []string `yaml:"include" json:"include"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error disabled"`
	JSON  bool   `yaml:"json" json:"json"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "file",
			Path:   ".tessera",
		},
		Export: ExportConfig{
			OutDir: "dist",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fieldPath(fe), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// fieldPath turns "Config.Storage.Driver" into "storage.driver".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
