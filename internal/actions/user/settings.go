package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/editor"
	"github.com/gnote-tools/cli/internal/markup"
	"github.com/gnote-tools/cli/internal/prefs"
	"github.com/gnote-tools/cli/internal/usage"
)

func Settings(ctx context.Context, app *domain.Application, req commands.SettingsRequest) error {
	return settings(ctx, req, NewDeps(app))
}

func settings(_ context.Context, req commands.SettingsRequest, deps Deps) error {
	p, err := prefs.Load(deps.Cache)
	if err != nil {
		return err
	}

	saved := func() {
		_, _ = deps.Out.Println(deps.Styler.Success("Changes saved."))
	}

	if req.Editor.Given {
		if req.Editor.Query {
			_, _ = deps.Out.Println("Current editor is: " + editor.Resolve(p.Editor, deps.Getenv, deps.GOOS))
		} else {
			if err := deps.Cache.SetSetting(prefs.KeyEditor, req.Editor.Value); err != nil {
				return err
			}
			saved()
		}
	}

	if req.Extras.Given {
		if req.Extras.Query {
			_, _ = deps.Out.Println("Current markdown extras is : " + strings.Join(p.Extras, ","))
		} else {
			extras := prefs.ParseExtras(req.Extras.Value)
			if unknown := markup.UnknownExtras(extras); len(unknown) > 0 {
				return usage.InvalidValue("Unknown markdown extras: %s", strings.Join(unknown, ", "))
			}
			if err := deps.Cache.SetSetting(prefs.KeyExtras, strings.Join(extras, ",")); err != nil {
				return err
			}
			saved()
		}
	}

	if req.NoteExt.Given {
		if req.NoteExt.Query {
			_, _ = deps.Out.Println("Current note extension is: " + p.NoteExt.String())
		} else {
			ext, err := prefs.ParseNoteExt(req.NoteExt.Value)
			if err != nil {
				return usage.InvalidValue("%s", prefs.ErrNoteExt)
			}
			if err := deps.Cache.SetSetting(prefs.KeyNoteExt, ext.String()); err != nil {
				return err
			}
			saved()
		}
	}

	if req.Editor.Given || req.Extras.Given || req.NoteExt.Given {
		return nil
	}
	return printSettings(p, deps)
}

func printSettings(p prefs.Prefs, deps Deps) error {
	rule := strings.Repeat("*", 30)
	lines := []string{
		"gnote",
		rule,
		"Version: " + deps.Version,
		"App dir: " + deps.AppDir,
		"Error log: " + deps.LogPath,
		"Editor: " + editor.Resolve(p.Editor, deps.Getenv, deps.GOOS),
		"Markdown extras: " + strings.Join(p.Extras, ","),
		"Note extension: " + p.NoteExt.String(),
	}

	info, err := deps.Cache.UserInfo()
	if err != nil {
		return err
	}
	if info != nil {
		lines = append(lines,
			rule,
			"Username: "+info.Username,
			fmt.Sprintf("Id: %d", info.ID),
			"Email: "+info.Email,
		)
	}

	_, _ = deps.Out.Println(strings.Join(lines, "\n"))
	return nil
}
