/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/tessera/config"
	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/internal/workspace"
	"bennypowers.dev/tessera/storage"
)

// debounce groups bursts of writes (tmp file + rename, sqlite WAL) into one export.
const debounce = 200 * time.Millisecond

func watchLoop(ctx context.Context, out io.Writer, req request) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := once(ctx, out, req); err != nil {
		return err
	}

	w, err := workspace.Open(ctx)
	if err != nil {
		return err
	}
	dirs, err := watchDirs(w.Config, w.Root)
	_ = w.Close()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	osfs := fs.NewOSFileSystem()
	for _, dir := range dirs {
		if !osfs.Exists(dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logger.Info("watching %s", dir)
	}

	outDir := req.outDir
	if outDir == "" {
		outDir = w.OutDir()
	}
	outDir, _ = filepath.Abs(outDir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, outDir) {
				continue
			}
			logger.Debug("%s %s", event.Op, event.Name)
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(err, "watcher")
		case <-timer.C:
			if err := once(ctx, out, req); err != nil {
				logger.Error(err, "export failed")
			}
		}
	}
}

// watchDirs returns the directories whose changes invalidate an export:
// the storage location and the config directory.
func watchDirs(cfg *config.Config, root string) ([]string, error) {
	driver, err := storage.ParseDriver(cfg.Storage.Driver)
	if err != nil {
		return nil, err
	}
	path := cfg.Storage.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	var dirs []string
	switch driver {
	case storage.DriverMemory:
		return nil, errors.New("--watch needs a persistent store (file or sqlite)")
	case storage.DriverSQLite:
		dirs = append(dirs, filepath.Dir(path))
	default:
		dirs = append(dirs, path)
	}
	return append(dirs, filepath.Join(root, config.ConfigDir)), nil
}

// relevant drops events that cannot change the export, including our own
// writes when the output directory is watched.
func relevant(event fsnotify.Event, outDir string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) != outDir
}
