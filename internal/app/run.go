package app

import (
	"context"
	"fmt"

	"github.com/gnote-tools/cli/internal/actions"
	"github.com/gnote-tools/cli/internal/actions/completions"
	configactions "github.com/gnote-tools/cli/internal/actions/config"
	"github.com/gnote-tools/cli/internal/actions/dirsync"
	"github.com/gnote-tools/cli/internal/actions/notebooks"
	"github.com/gnote-tools/cli/internal/actions/notes"
	"github.com/gnote-tools/cli/internal/actions/tags"
	"github.com/gnote-tools/cli/internal/actions/user"
	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
)

// Run executes req.
func Run(ctx context.Context, app *domain.Application, req commands.Request) error {
	switch r := req.(type) {
	case commands.UserRequest:
		return user.User(ctx, app, r)
	case commands.LoginRequest:
		return user.Login(ctx, app, r)
	case commands.LogoutRequest:
		return user.Logout(ctx, app, r)
	case commands.SettingsRequest:
		return user.Settings(ctx, app, r)

	case commands.CreateRequest:
		return notes.Create(ctx, app, r)
	case commands.CreateLinkedRequest:
		return notes.CreateLinked(ctx, app, r)
	case commands.EditRequest:
		return notes.Edit(ctx, app, r)
	case commands.EditLinkedRequest:
		return notes.EditLinked(ctx, app, r)
	case commands.ShowRequest:
		return notes.Show(ctx, app, r)
	case commands.RemoveRequest:
		return notes.Remove(ctx, app, r)
	case commands.FindRequest:
		return notes.Find(ctx, app, r)
	case commands.DedupRequest:
		return notes.Dedup(ctx, app, r)
	case commands.SyncRequest:
		return dirsync.Sync(ctx, app, r)

	case commands.NotebookListRequest:
		return notebooks.List(ctx, app, r)
	case commands.NotebookCreateRequest:
		return notebooks.Create(ctx, app, r)
	case commands.NotebookEditRequest:
		return notebooks.Edit(ctx, app, r)
	case commands.NotebookRemoveRequest:
		return notebooks.Remove(ctx, app, r)

	case commands.TagListRequest:
		return tags.List(ctx, app, r)
	case commands.TagCreateRequest:
		return tags.Create(ctx, app, r)
	case commands.TagEditRequest:
		return tags.Edit(ctx, app, r)
	case commands.TagRemoveRequest:
		return tags.Remove(ctx, app, r)

	case commands.CompletionRequest:
		return completions.Completions(ctx, app, r)
	case commands.VersionRequest:
		return actions.ShowVersion(ctx, app, r)
	case commands.ConfigListRequest:
		return configactions.List(ctx, app, r)
	case commands.ConfigGetRequest:
		return configactions.Get(ctx, app, r)
	case commands.ConfigSetRequest:
		return configactions.Set(ctx, app, r)
	case commands.ConfigUnsetRequest:
		return configactions.Unset(ctx, app, r)
	}
	return fmt.Errorf("app: unhandled request %T", req)
}
