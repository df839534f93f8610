// Package user implements the account commands: user, login, logout and
// settings.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/usage"
)

func User(ctx context.Context, app *domain.Application, req commands.UserRequest) error {
	return showUser(ctx, req, NewDeps(app))
}

func showUser(ctx context.Context, req commands.UserRequest, deps Deps) error {
	svc, err := deps.Session.Service()
	if err != nil {
		return err
	}

	info, err := deps.Cache.UserInfo()
	if err != nil {
		return err
	}

	if req.Full || info == nil {
		deps.Progress.SetMessage("Loading user info...")
		info, err = svc.GetUser(ctx)
		deps.Progress.Stop()
		if err != nil {
			return deps.Session.Check(err)
		}
	}

	ui.ShowUser(deps.Out, *info, req.Full)
	return nil
}

func Login(ctx context.Context, app *domain.Application, req commands.LoginRequest) error {
	return login(ctx, req, NewDeps(app))
}

func login(ctx context.Context, _ commands.LoginRequest, deps Deps) error {
	loggedIn, err := deps.Session.LoggedIn()
	if err != nil {
		return err
	}
	if loggedIn {
		return usage.InvalidValue("You have already logged in.")
	}

	_, _ = deps.Out.Println("Create a developer token at https://www.evernote.com/api/DeveloperToken.action")
	token, err := deps.Terminal.ReadPassword("Developer token: ")
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return usage.InvalidValue("Error: could not log in. The token is empty.")
	}

	deps.Progress.SetMessage("Authorize...")
	info, err := deps.Connect(token).GetUser(ctx)
	deps.Progress.Stop()
	if err != nil {
		deps.Logger.Warn("login: token rejected: %v", err)
		return fmt.Errorf("could not log in: %w", err)
	}

	if err := deps.Cache.CreateUser("", info); err != nil {
		return err
	}
	if err := deps.Secrets.SetToken(token); err != nil {
		return err
	}

	deps.Logger.Info("login: logged in as %s", info.Username)
	_, _ = deps.Out.Println(deps.Styler.Success("You have successfully logged in."))
	return nil
}

func Logout(ctx context.Context, app *domain.Application, req commands.LogoutRequest) error {
	return logout(ctx, req, NewDeps(app))
}

func logout(_ context.Context, req commands.LogoutRequest, deps Deps) error {
	loggedIn, err := deps.Session.LoggedIn()
	if err != nil {
		return err
	}
	if !loggedIn {
		return usage.InvalidValue("You have already logged out.")
	}

	if !req.Force {
		ok, err := deps.Terminal.Confirm("Are you sure you want to logout?")
		if err != nil {
			return err
		}
		if !ok {
			return usage.Cancelled()
		}
	}

	if err := deps.Secrets.DeleteToken(); err != nil {
		return err
	}
	if err := deps.Cache.RemoveUser(); err != nil {
		return fmt.Errorf("could not log out: %w", err)
	}

	deps.Logger.Info("logout: session removed")
	_, _ = deps.Out.Println(deps.Styler.Success("You have successfully logged out."))
	return nil
}
