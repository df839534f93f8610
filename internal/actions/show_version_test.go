package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/testutil"
)

func TestShowVersion_PrintsVersion(t *testing.T) {
	app := testutil.NewApp(t)

	require.NoError(t, ShowVersion(context.Background(), app.Application, commands.VersionRequest{}))
	require.Equal(t, "gnote version 0.0.0-test\n", app.Out.String())
}
