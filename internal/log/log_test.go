package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		// Verify database file exists
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Log(Entry{
			Source:    "scaffold:new",
			Author:    "test-user",
			Action:    "scaffold",
			Year:      2024,
			Day:       1,
			Languages: "go,python",
			Path:      "2024/day01",
			Success:   true,
		})

		// Verify entry was written
		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, languages, path string
		var year, day, success int
		err = db.QueryRow("SELECT source, action, year, day, languages, path, success FROM log WHERE id = 1").
			Scan(&source, &action, &year, &day, &languages, &path, &success)
		require.NoError(t, err)
		assert.Equal(t, "scaffold:new", source)
		assert.Equal(t, "scaffold", action)
		assert.Equal(t, 2024, year)
		assert.Equal(t, 1, day)
		assert.Equal(t, "go,python", languages)
		assert.Equal(t, "2024/day01", path)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		// Reset global for clean test
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Log(Entry{
			Source:  "scaffold:new",
			Action:  "scaffold",
			Success: false,
			Error:   `year "2014": must be a number between 2015 and 2099`,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Contains(t, errMsg, "2014")
	})

	t.Run("log with detail", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Log(Entry{
			Source:  "workspace:doctor",
			Action:  "check",
			Success: true,
			Detail:  map[string]any{"issues": 3, "base": "/home/user/advent"},
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "issues")
		assert.Contains(t, detail, "3")
	})

	t.Run("entries share one run id per process", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		Log(Entry{Source: "scaffold:new", Action: "scaffold", Success: true})
		Log(Entry{Source: "workspace:tree", Action: "list", Success: true})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		rows, err := db.Query("SELECT DISTINCT run FROM log ORDER BY id DESC LIMIT 2")
		require.NoError(t, err)
		defer rows.Close()

		var runs []string
		for rows.Next() {
			var run string
			require.NoError(t, rows.Scan(&run))
			runs = append(runs, run)
		}
		require.NoError(t, rows.Err())
		assert.Len(t, runs, 1, "entries from one process should share a run id")
		assert.NotEmpty(t, runs[0])
	})

	t.Run("recent returns newest first", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Log(Entry{Source: "scaffold:new", Action: "scaffold", Year: 2024, Day: 1, Success: true})
		Log(Entry{Source: "scaffold:new", Action: "scaffold", Year: 2024, Day: 2, Success: true})

		entries, err := Recent(2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].Day, "newest entry first")
		assert.Equal(t, 1, entries[1].Day)
		assert.Equal(t, entries[0].Run, entries[1].Run)
		assert.NotEmpty(t, entries[0].Workspace)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "scaffold:new",
			Action:  "scaffold",
			Success: true,
		})
	})

	t.Run("recent without logger returns nothing", func(t *testing.T) {
		Close()

		entries, err := Recent(10)
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open() // second call should succeed
		require.NoError(t, err)

		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/advent")
	h2 := hash("/home/user/advent")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".aocgen", "log", "aocgen-log.db")

	// Use default path function
	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}

func TestBuilder(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("fluent API success", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Event("scaffold:new", "scaffold").
			Author("test-user").
			Year(2024).
			Day(5).
			Languages([]string{"go", "rust"}).
			Path("2024/day05").
			Write(nil) // success

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, author, action, languages, path string
		var year, day, success int
		err = db.QueryRow("SELECT source, author, action, year, day, languages, path, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &author, &action, &year, &day, &languages, &path, &success)
		require.NoError(t, err)
		assert.Equal(t, "scaffold:new", source)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, "scaffold", action)
		assert.Equal(t, 2024, year)
		assert.Equal(t, 5, day)
		assert.Equal(t, "go,rust", languages)
		assert.Equal(t, "2024/day05", path)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		testErr := sql.ErrNoRows // use any error
		Event("scaffold:new", "scaffold").
			Author("test-user").
			Year(2024).
			Write(testErr)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})

	t.Run("fluent API with Detail", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetWorkspace("/home/user/advent")

		Event("workspace:doctor", "check").
			Author("test-user").
			Detail("issues", 2).
			Detail("dry_run", true).
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "issues")
		assert.Contains(t, detail, "dry_run")
	})
}
