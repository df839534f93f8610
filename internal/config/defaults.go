package config

import (
	"os"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
)

// Hosts selected by GNOTE_BASE and sandbox=true.
const (
	YinxiangHost = "app.yinxiang.com"
	SandboxHost  = "sandbox.evernote.com"
)

// Defaults holds values computed at lookup time. Keys not listed here use
// domain.ConfigKeys defaults.
var Defaults = map[string]func() string{
	"service_host": func() string {
		if strings.EqualFold(os.Getenv("GNOTE_BASE"), "yinxiang") {
			return YinxiangHost
		}
		return "www.evernote.com"
	},
}

func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return domain.GetDefaultValue(key)
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Get returns the value for key from the rc file, falling back to its
// default. A broken rc file yields the default.
func Get(key string) (string, bool) {
	if cfg, err := load(); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	return defaultValue(key)
}

// GetAll returns the defaults of every known key overlaid with the rc file.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name], _ = defaultValue(key.Name)
	}

	cfg, err := load()
	if err != nil {
		return result, err
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}
