package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/paths"
)

// ReadLines returns the lines of the rc file. A missing file has no lines.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if info, err := file.Stat(); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(configPath, 0600); err != nil {
			log.Warn("config: could not set permissions on config file: %v", err)
		}
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// template returns the lines a new rc file starts with: every visible key
// at its default, color overrides commented out.
func template() []string {
	lines := []string{
		"# gnote configuration",
		"# Edit values below or use: gnote config-set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
