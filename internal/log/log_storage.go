// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence.
// Using SQLite enables cross-workspace log queries and structured filtering
// that plain text logs cannot provide. The workspace field uses a hash of the
// base directory path to enable aggregation while preserving privacy.
//
// Design: Errors during logging are silently ignored (best-effort). This
// prevents log failures from breaking the main operation - a scaffold should
// succeed even if we can't record it in the audit log.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db        *sql.DB
	run       string // uuid assigned per process in Open
	workspace string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, run, workspace, source, author, action,
		                 year, day, languages, path, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.run, l.workspace, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfZero(e.Year), nilIfZero(e.Day), nilIfEmpty(e.Languages),
		nilIfEmpty(e.Path), success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort logging: don't break main operation, but report failure
		_, _ = fmt.Fprintf(os.Stderr, "aocgen: audit log write failed: %v\n", err)
	}
}

// recent reads the newest entries back out, most recent first.
func (l *Logger) recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT start, end, run, workspace, source, author, action,
		       year, day, languages, path, success, error
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var author, languages, path, errMsg sql.NullString
		var year, day sql.NullInt64
		var success int
		if err := rows.Scan(&e.Start, &e.End, &e.Run, &e.Workspace, &e.Source,
			&author, &e.Action, &year, &day, &languages, &path, &success, &errMsg); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		e.Author = author.String
		e.Year = int(year.Int64)
		e.Day = int(day.Int64)
		e.Languages = languages.String
		e.Path = path.String
		e.Success = success == 1
		e.Error = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows logging to work in unusual environments (containers, etc.)
		// rather than silently failing.
		return filepath.Join(".aocgen", "log", "aocgen-log.db")
	}
	return filepath.Join(home, ".aocgen", "log", "aocgen-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a workspace identifier from the directory path, enabling
// cross-workspace log queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			start     INTEGER NOT NULL,
			end       INTEGER NOT NULL,
			run       TEXT NOT NULL,
			workspace TEXT NOT NULL,
			source    TEXT NOT NULL,
			author    TEXT,
			action    TEXT NOT NULL,
			year      INTEGER,
			day       INTEGER,
			languages TEXT,
			path      TEXT,
			success   INTEGER NOT NULL,
			error     TEXT,
			detail    TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_workspace ON log(workspace);
		CREATE INDEX IF NOT EXISTS idx_log_run ON log(run);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nilIfZero returns nil for zero values, indicating "not applicable" in queries.
func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
