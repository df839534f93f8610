package testutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/store"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/ui/style"
)

// Token is the session token of NewApp.
const Token = "S=s1:U=7:E=1"

// Now is the clock of NewApp.
var Now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// App is an Application wired to in-memory fakes.
type App struct {
	*domain.Application

	Out      *bytes.Buffer
	ErrOut   *bytes.Buffer
	Cache    *store.Store
	Config   *MapConfig
	Service  *FakeService
	Secrets  *MemSecrets
	Terminal *FakeTerminal
	Progress *Progress
	Tokens   []string // tokens passed to Connect
}

// NewApp returns an application logged in as user 7 on shard s1.
func NewApp(t *testing.T) *App {
	t.Helper()

	user := domain.User{ID: 7, Username: "jo", Name: "Jo", Email: "jo@example.com", ShardID: "s1"}
	a := &App{
		Out:      &bytes.Buffer{},
		ErrOut:   &bytes.Buffer{},
		Cache:    NewTestStore(t),
		Config:   NewMapConfig(domain.GetDefaultValue, nil),
		Service:  NewFakeService(user),
		Secrets:  &MemSecrets{Value: Token},
		Terminal: &FakeTerminal{},
		Progress: &Progress{},
	}
	require.NoError(t, a.Cache.CreateUser("", &user))

	a.Application = &domain.Application{
		Config:   a.Config,
		Cache:    a.Cache,
		Secrets:  a.Secrets,
		Logger:   log.NopLogger{},
		Output:   ui.NewWriterTo(a.Out, ui.WithPagerDisabled()),
		ErrOut:   a.ErrOut,
		Input:    strings.NewReader(""),
		Styler:   style.NopStyler{},
		Progress: a.Progress,
		Terminal: a.Terminal,
		Connect: func(token string) domain.NoteService {
			a.Tokens = append(a.Tokens, token)
			return a.Service
		},
		Host:     "www.evernote.com",
		Version:  "0.0.0-test",
		Now:      func() time.Time { return Now },
		Location: time.UTC,
	}
	return a
}

// LogOut drops the session token.
func (a *App) LogOut() {
	a.Secrets.Value = ""
}
