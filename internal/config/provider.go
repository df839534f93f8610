package config

import "github.com/gnote-tools/cli/internal/domain"

// Provider implements domain.ConfigProvider on the rc file.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes key=value. A new rc file starts from the commented template.
func (p *Provider) Set(key, value string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			lines = template()
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes key so it falls back to its default.
func (p *Provider) Unset(key string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, removed := Unset(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
