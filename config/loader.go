/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tessera/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tessera"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tessera.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}
	return nil, nil
}

// LoadFile reads one config file. Fields the file omits keep their
// defaults. JSON files may carry comments and trailing commas.
func LoadFile(filesystem fs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}
