package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gnote-tools/cli/internal/domain"
)

// Settings are the typed values of the rc file.
type Settings struct {
	ServiceHost      string
	NoteSortOrder    domain.NoteSortOrder
	SleepOnRateLimit bool
	MaxRetries       int
	RequestTimeout   time.Duration
	AutosaveInterval time.Duration
	EnableLog        bool
	LogLevel         string
	Pager            string
	RenderMarkdown   bool
	Theme            string
}

// Load reads Settings from p. Invalid values are reported with their key.
func Load(p domain.ConfigProvider) (Settings, error) {
	get := func(key string) string {
		v, _ := p.Get(key)
		return v
	}

	s := Settings{
		ServiceHost: get("service_host"),
		LogLevel:    get("log_level"),
		Pager:       get("pager"),
		Theme:       get("theme"),
	}

	var err error
	sandbox, err := parseBool("sandbox", get("sandbox"))
	if err != nil {
		return s, err
	}
	if sandbox {
		s.ServiceHost = SandboxHost
	}

	order, ok := domain.ParseNoteSortOrder(get("note_sort_order"))
	if !ok {
		return s, fmt.Errorf("config: invalid note_sort_order %q", get("note_sort_order"))
	}
	s.NoteSortOrder = order

	if s.SleepOnRateLimit, err = parseBool("sleep_on_rate_limit", get("sleep_on_rate_limit")); err != nil {
		return s, err
	}
	if s.EnableLog, err = parseBool("enable_log", get("enable_log")); err != nil {
		return s, err
	}
	if s.RenderMarkdown, err = parseBool("render_markdown", get("render_markdown")); err != nil {
		return s, err
	}

	s.MaxRetries, err = strconv.Atoi(get("max_retries"))
	if err != nil || s.MaxRetries < 0 {
		return s, fmt.Errorf("config: invalid max_retries %q", get("max_retries"))
	}

	if s.RequestTimeout, err = parseDuration("request_timeout", get("request_timeout")); err != nil {
		return s, err
	}
	if s.AutosaveInterval, err = parseDuration("autosave_interval", get("autosave_interval")); err != nil {
		return s, err
	}

	return s, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q: want true or false", key, value)
	}
	return b, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: invalid %s %q: want a duration such as 5s", key, value)
	}
	return d, nil
}

// DefaultSettings returns Settings built from defaults only.
func DefaultSettings() Settings {
	s, _ := Load(defaultsProvider{})
	return s
}

type defaultsProvider struct{}

func (defaultsProvider) Get(key string) (string, bool)      { return defaultValue(key) }
func (defaultsProvider) GetAll() (map[string]string, error) { return nil, nil }
func (defaultsProvider) Set(string, string) error           { return nil }
func (defaultsProvider) Unset(string) error                 { return nil }

// Validate reports whether value is acceptable for key, with every other
// key at its default.
func Validate(key, value string) error {
	_, err := Load(overrideProvider{key: key, value: value})
	return err
}

type overrideProvider struct {
	defaultsProvider
	key, value string
}

func (o overrideProvider) Get(key string) (string, bool) {
	if key == o.key {
		return o.value, true
	}
	return defaultValue(key)
}
