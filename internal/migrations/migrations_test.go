package migrations

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_BaselineIsEmbedded(t *testing.T) {
	src, err := iofs.New(MigrationFiles, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS inventory")
	require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS sales")
}

func TestPreviousVersion_FirstMigrationHasNone(t *testing.T) {
	src, err := iofs.New(MigrationFiles, ".")
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, -1, previousVersion(src, 1))
}
