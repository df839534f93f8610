// Package config implements config-list, config-get, config-set and
// config-unset on the rc file.
package config

import (
	"context"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/config"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/usage"
)

func List(ctx context.Context, app *domain.Application, req commands.ConfigListRequest) error {
	return list(ctx, req, NewDeps(app))
}

func list(_ context.Context, _ commands.ConfigListRequest, d Deps) error {
	values, err := d.Config.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value, ok := values[key.Name]
			if !ok {
				value = key.Default
			}
			if key.HideIfEmpty && value == "" {
				continue
			}
			lines = append(lines, key.Name+"="+value)
		}
		if len(lines) == 0 {
			continue
		}

		if !first {
			_, _ = d.Out.Println()
		}
		first = false
		_, _ = d.Out.Println(d.Styler.Header(section))
		for _, line := range lines {
			_, _ = d.Out.Println(line)
		}
	}
	return nil
}

func Get(ctx context.Context, app *domain.Application, req commands.ConfigGetRequest) error {
	return get(ctx, req, NewDeps(app))
}

func get(_ context.Context, req commands.ConfigGetRequest, d Deps) error {
	if !domain.IsValidConfigKey(req.Key) {
		return usage.InvalidConfigKey(req.Key)
	}

	value, _ := d.Config.Get(req.Key)
	_, _ = d.Out.Println(value)
	return nil
}

func Set(ctx context.Context, app *domain.Application, req commands.ConfigSetRequest) error {
	return set(ctx, req, NewDeps(app))
}

func set(_ context.Context, req commands.ConfigSetRequest, d Deps) error {
	if !domain.IsValidConfigKey(req.Key) {
		return usage.InvalidConfigKey(req.Key)
	}

	if err := config.Validate(req.Key, req.Value); err != nil {
		return usage.InvalidValue("%v", err)
	}

	previous, _ := d.Config.Get(req.Key)
	if err := d.Config.Set(req.Key, req.Value); err != nil {
		return err
	}
	d.Logger.Info("config: set %s=%s (was %s)", req.Key, req.Value, previous)

	_, _ = d.Out.Printf("%s=%s\n", req.Key, req.Value)
	return nil
}

func Unset(ctx context.Context, app *domain.Application, req commands.ConfigUnsetRequest) error {
	return unset(ctx, req, NewDeps(app))
}

func unset(_ context.Context, req commands.ConfigUnsetRequest, d Deps) error {
	if !domain.IsValidConfigKey(req.Key) {
		return usage.InvalidConfigKey(req.Key)
	}

	if err := d.Config.Unset(req.Key); err != nil {
		return err
	}
	d.Logger.Info("config: unset %s", req.Key)

	value, _ := d.Config.Get(req.Key)
	_, _ = d.Out.Printf("%s reset to %q\n", req.Key, value)
	return nil
}
