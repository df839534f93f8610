package secret

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/testutil"
)

type brokenKeyring struct{}

var errNoKeyring = errors.New("dbus: no session bus")

func (brokenKeyring) Get(string, string) (string, error) { return "", errNoKeyring }
func (brokenKeyring) Set(string, string, string) error   { return errNoKeyring }
func (brokenKeyring) Delete(string, string) error        { return errNoKeyring }

func TestStore_Keyring(t *testing.T) {
	keyring.MockInit()
	cache := testutil.NewTestStore(t)
	s := New(cache)

	token, err := s.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, s.SetToken("S=s1:U=1"))
	token, err = s.Token()
	require.NoError(t, err)
	require.Equal(t, "S=s1:U=1", token)

	got, err := keyring.Get(serviceName, tokenAccount)
	require.NoError(t, err)
	require.Equal(t, "S=s1:U=1", got)

	var cached string
	ok, err := cache.UserProp(cacheTokenKey, &cached)
	require.NoError(t, err)
	require.False(t, ok, "token must not be duplicated in the cache")

	require.NoError(t, s.DeleteToken())
	token, err = s.Token()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestStore_FallsBackToCache(t *testing.T) {
	cache := testutil.NewTestStore(t)
	s := New(cache, WithKeyring(brokenKeyring{}))

	require.NoError(t, s.SetToken("S=s1:U=2"))

	var cached string
	ok, err := cache.UserProp(cacheTokenKey, &cached)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "S=s1:U=2", cached)

	token, err := s.Token()
	require.NoError(t, err)
	require.Equal(t, "S=s1:U=2", token)

	require.NoError(t, s.DeleteToken())
	token, err = s.Token()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestStore_ReadsLegacyCacheToken(t *testing.T) {
	keyring.MockInit()
	cache := testutil.NewTestStore(t)
	require.NoError(t, cache.CreateUser("S=legacy", &domain.User{Username: "ada"}))

	token, err := New(cache).Token()
	require.NoError(t, err)
	require.Equal(t, "S=legacy", token)
}
