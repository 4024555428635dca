package migrations_test

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/zWesleyDavid/prototipo-luvr/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	require.Equal(t, 1, all[0].Version)
	require.Equal(t, "kv_items", all[0].Description)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
}

func TestLoadFS_SortsAndRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/02_second.sql": {Data: []byte("SELECT 2;")},
		"sql/01_first.sql":  {Data: []byte("SELECT 1;")},
		"sql/README.md":     {Data: []byte("ignored")},
	}

	all, err := migrations.LoadFS(fsys, "sql")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "first", all[0].Description)
	require.Equal(t, "second", all[1].Description)

	fsys["sql/02_again.sql"] = &fstest.MapFile{Data: []byte("SELECT 3;")}
	_, err = migrations.LoadFS(fsys, "sql")
	require.ErrorContains(t, err, "duplicate version 2")
}

func TestLoadFS_BadFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/first.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := migrations.LoadFS(fsys, "sql")
	require.Error(t, err)
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	db := openMemory(t)

	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(db))

	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestApply_RollsBackFailedMigration(t *testing.T) {
	db := openMemory(t)

	err := migrations.Apply(db, []migrations.Migration{
		{Version: 1, Description: "ok", SQL: "CREATE TABLE a (id INTEGER);"},
		{Version: 2, Description: "broken", SQL: "CREATE TABLE nope ("},
	})
	require.ErrorContains(t, err, "migration 02_broken")

	v, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}
