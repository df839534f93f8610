package tags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/notestore"
	"github.com/gnote-tools/cli/internal/testutil"
	"github.com/gnote-tools/cli/internal/usage"
)

func newApp(t *testing.T) *testutil.App {
	a := testutil.NewApp(t)
	a.Service.Tags = []domain.Tag{
		{GUID: "t-1", Name: "home"},
		{GUID: "t-2", Name: "work", ParentGUID: "t-0"},
	}
	return a
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, kind, uerr.Kind)
}

func TestList(t *testing.T) {
	a := newApp(t)

	require.NoError(t, list(context.Background(), commands.TagListRequest{GUID: true}, NewDeps(a.Application)))

	require.Equal(t, "Found 2 items\nt-1 : home\nt-2 : work\n", a.Out.String())
	cached, err := a.Cache.Tags()
	require.NoError(t, err)
	require.Equal(t, a.Service.Tags, cached)
}

func TestCreate(t *testing.T) {
	a := newApp(t)

	require.NoError(t, create(context.Background(), commands.TagCreateRequest{Title: "urgent"}, NewDeps(a.Application)))

	require.Equal(t, "urgent", a.Service.Tags[2].Name)
	require.Equal(t, "Tag successfully created.\n", a.Out.String())
}

func TestEdit(t *testing.T) {
	a := newApp(t)

	require.NoError(t, edit(context.Background(), commands.TagEditRequest{Name: "work", Title: "job"}, NewDeps(a.Application)))

	require.Equal(t, domain.Tag{GUID: "t-2", Name: "job", ParentGUID: "t-0"}, a.Service.Tags[1])
	require.Equal(t, "Tag successfully updated.\n", a.Out.String())
}

func TestEdit_Select(t *testing.T) {
	a := newApp(t)
	a.Terminal.Selects = []int{0}

	require.NoError(t, edit(context.Background(), commands.TagEditRequest{Name: "hom", Title: "house"}, NewDeps(a.Application)))

	require.Equal(t, [][]string{{"home", "work"}}, a.Terminal.Selections)
	require.Equal(t, "house", a.Service.Tags[0].Name)
}

func TestEdit_NoTags(t *testing.T) {
	a := testutil.NewApp(t)

	err := edit(context.Background(), commands.TagEditRequest{Name: "x", Title: "y"}, NewDeps(a.Application))
	requireKind(t, err, usage.ErrNotFound)
}

func TestRemove(t *testing.T) {
	a := newApp(t)
	a.Terminal.Confirms = []bool{true}

	require.NoError(t, remove(context.Background(), commands.TagRemoveRequest{Name: "home"}, NewDeps(a.Application)))

	require.Equal(t, []string{`Are you sure you want to delete the tag "home"?`}, a.Terminal.Questions)
	require.Len(t, a.Service.Tags, 1)
	require.Equal(t, "Tag successfully removed.\n", a.Out.String())
}

func TestRemove_Declined(t *testing.T) {
	a := newApp(t)
	a.Terminal.Confirms = []bool{false}

	err := remove(context.Background(), commands.TagRemoveRequest{Name: "home"}, NewDeps(a.Application))

	requireKind(t, err, usage.ErrCancelled)
	require.Zero(t, a.Service.Called("ExpungeTag"))
}

func TestRemove_ExpiredSession(t *testing.T) {
	a := newApp(t)
	a.Service.Err = notestore.ErrAuthExpired

	err := remove(context.Background(), commands.TagRemoveRequest{Name: "home", Force: true}, NewDeps(a.Application))

	requireKind(t, err, usage.ErrNotLoggedIn)
	require.Empty(t, a.Secrets.Value)
}
