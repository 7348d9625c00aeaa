/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tessera/fs"
)

// ParseDriver converts a string to a Driver.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(s)); d {
	case DriverFile, DriverSQLite, DriverMemory:
		return d, nil
	case "":
		return DriverFile, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q (valid: file, sqlite, memory)", s)
	}
}

// ParseLocation splits a store location such as "sqlite:tokens.db" or
// "file:.tessera" into driver and path. A bare path picks sqlite when it
// ends in .db or .sqlite, file otherwise. "memory" needs no path.
func ParseLocation(loc string) (Driver, string, error) {
	if loc == string(DriverMemory) {
		return DriverMemory, "", nil
	}
	if name, path, ok := strings.Cut(loc, ":"); ok && len(name) > 1 {
		d, err := ParseDriver(name)
		return d, path, err
	}
	switch filepath.Ext(loc) {
	case ".db", ".sqlite", ".sqlite3":
		return DriverSQLite, loc, nil
	}
	return DriverFile, loc, nil
}

// Open creates the backend named by driver.
func Open(ctx context.Context, filesystem fs.FileSystem, driver Driver, path string, quota int64) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(quota), nil
	case DriverSQLite:
		return OpenSQLite(ctx, path, quota)
	case DriverFile, "":
		return NewFileStore(filesystem, path, quota)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
