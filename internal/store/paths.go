package store

import "github.com/gnote-tools/cli/internal/paths"

// DBPath returns the default cache location.
func DBPath() string {
	return paths.CacheFilePath()
}
