/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace wires configuration, storage and the snapshot store
// for one CLI or MCP session.
package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/config"
	"bennypowers.dev/tessera/defaults"
	"bennypowers.dev/tessera/export"
	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/storage"
)

// Viper keys shared by the root command's persistent flags.
const (
	KeyConfig   = "config"
	KeyStore    = "store"
	KeyLogLevel = "log-level"
	KeyLogJSON  = "log-json"
	KeyPrefix   = "prefix"
)

// Settings are command-line and environment overrides. Empty fields
// leave the config file value in place.
type Settings struct {
	ConfigFile string
	Store      string
	LogLevel   string
	LogJSON    bool
	Prefix     string
}

// SettingsFromViper reads overrides bound by the root command.
func SettingsFromViper() Settings {
	return Settings{
		ConfigFile: viper.GetString(KeyConfig),
		Store:      viper.GetString(KeyStore),
		LogLevel:   viper.GetString(KeyLogLevel),
		LogJSON:    viper.GetBool(KeyLogJSON),
		Prefix:     viper.GetString(KeyPrefix),
	}
}

// Workspace is an opened session.
type Workspace struct {
	FS       fs.FileSystem
	Root     string
	Config   *config.Config
	Registry component.Registry
	Store    *snapshot.Store

	backend storage.Store
}

// Open opens the workspace in the current directory of the OS file system.
func Open(ctx context.Context) (*Workspace, error) {
	return OpenWith(ctx, fs.NewOSFileSystem(), ".", SettingsFromViper())
}

// OpenWith loads config from root (or s.ConfigFile), applies s, and opens
// the configured storage backend seeded with the default snapshot.
func OpenWith(ctx context.Context, filesystem fs.FileSystem, root string, s Settings) (*Workspace, error) {
	cfg, err := loadConfig(filesystem, root, s.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := apply(cfg, s); err != nil {
		return nil, err
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	logger.SetJSON(cfg.Log.JSON)

	driver, err := storage.ParseDriver(cfg.Storage.Driver)
	if err != nil {
		return nil, err
	}
	path := cfg.Storage.Path
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	backend, err := storage.Open(ctx, filesystem, driver, path, cfg.Storage.Quota)
	if err != nil {
		return nil, fmt.Errorf("opening %s store at %s: %w", driver, path, err)
	}
	logger.Debug("opened %s store at %s", driver, path)

	reg := defaults.Registry()
	seed := defaults.Snapshot(time.Now())
	if cfg.Name != "" {
		seed.Name = cfg.Name
	}
	store, err := snapshot.Open(ctx, snapshot.Options{
		Backend:  backend,
		Registry: reg,
		Seeds:    []*snapshot.Snapshot{seed},
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &Workspace{
		FS:       filesystem,
		Root:     root,
		Config:   cfg,
		Registry: reg,
		Store:    store,
		backend:  backend,
	}, nil
}

func loadConfig(filesystem fs.FileSystem, root, file string) (*config.Config, error) {
	if file != "" {
		return config.LoadFile(filesystem, file)
	}
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}

func apply(cfg *config.Config, s Settings) error {
	if s.Store != "" {
		driver, path, err := storage.ParseLocation(s.Store)
		if err != nil {
			return err
		}
		cfg.Storage.Driver = string(driver)
		cfg.Storage.Path = path
	}
	if s.LogLevel != "" {
		cfg.Log.Level = s.LogLevel
	}
	if s.LogJSON {
		cfg.Log.JSON = true
	}
	if s.Prefix != "" {
		cfg.Prefix = s.Prefix
	}
	return cfg.Validate()
}

// ExportOptions returns export options from config.
func (w *Workspace) ExportOptions() export.Options {
	return export.Options{
		Prefix:  w.Config.Prefix,
		Include: w.Config.Export.Include,
	}
}

// ExportFormats returns the configured formats, or the defaults.
func (w *Workspace) ExportFormats() ([]export.Format, error) {
	return export.ParseFormats(w.Config.Export.Formats)
}

// OutDir returns the export directory resolved against Root.
func (w *Workspace) OutDir() string {
	dir := w.Config.Export.OutDir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(w.Root, dir)
}

// Document builds the export input from the current snapshot.
func (w *Workspace) Document() *export.Document {
	return export.NewDocument(w.Store.Current(), w.Registry)
}

// Close releases the storage backend.
func (w *Workspace) Close() error {
	return w.backend.Close()
}
