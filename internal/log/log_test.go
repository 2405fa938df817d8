package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database inside a temp directory.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:       "path:sep",
			Author:       "test-user",
			Action:       "sep",
			Path:         `C:\Users`,
			Size:         20,
			ResolvedPath: `C:\Users\`,
			Status:       "changed",
			Success:      true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, path, resolved, status string
		var size, success int
		err = db.QueryRow("SELECT source, action, path, size, resolved_path, status, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &size, &resolved, &status, &success)
		require.NoError(t, err)
		assert.Equal(t, "path:sep", source)
		assert.Equal(t, "sep", action)
		assert.Equal(t, `C:\Users`, path)
		assert.Equal(t, 20, size)
		assert.Equal(t, `C:\Users\`, resolved)
		assert.Equal(t, "changed", status)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "test:cmd",
			Action:  "test",
			Success: true,
		})

		entries, err := Recent(10)
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open()
		require.NoError(t, err)

		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	SetProject("/test/project")

	Event("path:strip", "strip").
		Author("test-user").
		Path(`\\?\C:\Temp`).
		Size(20).
		Resolved(`C:\Temp`).
		Status("changed").
		Write(nil)

	Event("path:sep", "sep").
		Author("test-user").
		Path(`C:\Users`).
		Size(9).
		Status("insufficient_buffer").
		Detail("remaining", 0).
		Write(errors.New("insufficient buffer"))

	entries, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	failed := entries[0]
	assert.Equal(t, "path:sep", failed.Source)
	assert.Equal(t, 9, failed.Size)
	assert.False(t, failed.Success)
	assert.Equal(t, "insufficient buffer", failed.Error)
	assert.Equal(t, "insufficient_buffer", failed.Status)
	assert.Contains(t, failed.Detail, "remaining")

	ok := entries[1]
	assert.Equal(t, "path:strip", ok.Source)
	assert.Equal(t, "test-user", ok.Author)
	assert.Equal(t, `\\?\C:\Temp`, ok.Path)
	assert.Equal(t, `C:\Temp`, ok.ResolvedPath)
	assert.True(t, ok.Success)
	assert.Greater(t, ok.End, int64(0))

	entries, err = Recent(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecentSince(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Log(Entry{Source: "path:sep", Action: "sep", Start: time.Now().Add(-48 * time.Hour).Unix()})
	Log(Entry{Source: "path:strip", Action: "strip", Start: time.Now().Unix()})

	entries, err := RecentSince(10, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "path:strip", entries[0].Source)

	entries, err = RecentSince(10, time.Time{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".pathcch", "log", "pathcch-log.db")

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}
