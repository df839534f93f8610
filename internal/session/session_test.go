package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/notestore"
	"github.com/gnote-tools/cli/internal/testutil"
	"github.com/gnote-tools/cli/internal/usage"
)

func TestService(t *testing.T) {
	app := testutil.NewApp(t)
	s := New(app.Application)

	svc, err := s.Service()
	require.NoError(t, err)
	require.Same(t, app.Service, svc)
	require.Equal(t, []string{testutil.Token}, app.Tokens)

	app.LogOut()
	_, err = s.Service()
	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, usage.ErrNotLoggedIn, uerr.Kind)

	ok, err := s.LoggedIn()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUser(t *testing.T) {
	app := testutil.NewApp(t)

	user, err := New(app.Application).User()
	require.NoError(t, err)
	require.Equal(t, "jo", user.Username)
	require.Equal(t, "s1", user.ShardID)
}

func TestCheck(t *testing.T) {
	app := testutil.NewApp(t)
	s := New(app.Application)

	require.NoError(t, s.Check(nil))
	other := errors.New("boom")
	require.Same(t, other, s.Check(other))
	require.Equal(t, testutil.Token, app.Secrets.Value)

	err := s.Check(fmt.Errorf("get note: %w", notestore.ErrAuthExpired))
	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Empty(t, app.Secrets.Value, "an expired token is dropped")
}

func TestFailed(t *testing.T) {
	app := testutil.NewApp(t)
	s := New(app.Application)

	err := s.Failed(errors.New("timeout"), "list tags")
	require.EqualError(t, err, "could not list tags: timeout")

	notFound := usage.NotFound("Tags have not been found.")
	require.Same(t, notFound, s.Failed(notFound, "list tags"))
}
