package testutil

import "maps"

// MapConfig is a domain.ConfigProvider over a map. Keys it lacks fall back
// to the defaults passed to NewMapConfig.
type MapConfig struct {
	values   map[string]string
	defaults func(string) (string, bool)
}

// NewMapConfig returns a MapConfig reading defaults for unset keys.
func NewMapConfig(defaults func(string) (string, bool), values map[string]string) *MapConfig {
	m := &MapConfig{values: map[string]string{}, defaults: defaults}
	maps.Copy(m.values, values)
	return m
}

func (m *MapConfig) Get(key string) (string, bool) {
	if v, ok := m.values[key]; ok {
		return v, true
	}
	if m.defaults != nil {
		return m.defaults(key)
	}
	return "", false
}

func (m *MapConfig) GetAll() (map[string]string, error) {
	return maps.Clone(m.values), nil
}

func (m *MapConfig) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MapConfig) Unset(key string) error {
	delete(m.values, key)
	return nil
}
