// Package log provides centralised audit logging for pathcch operations.
// Logs are stored in ~/.pathcch/log/pathcch-log.db and record every buffer
// edit made through the CLI or the MCP server.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("path:strip", "strip").
//		Author(cmd.Author()).
//		Path(input).
//		Size(size).
//		Resolved(b.String()).
//		Status(pathcch.Status(r, err)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "path:sep",
// "core:config", "mcp:strip".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string `json:"source"`         // e.g., "path:sep", "mcp:strip"
	Author string `json:"author"`         // who performed the action
	Action string `json:"action"`         // verb: sep, strip, classify, set, etc.
	Path   string `json:"path,omitempty"` // input: path text before the edit
	Size   int    `json:"size,omitempty"` // input: declared buffer size

	// Output fields - populated after the operation returns
	ResolvedPath string `json:"resolved_path,omitempty"` // output: path text after the edit
	Status       string `json:"status,omitempty"`        // output: changed, unchanged, insufficient_buffer, invalid_argument

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // whether operation succeeded
	Error   string         `json:"error,omitempty"`  // error message if failed
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "path:sep", "core:config")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:strip")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the input path text.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Size sets the declared buffer size the operation ran with.
func (b *Builder) Size(size int) *Builder {
	b.entry.Size = size
	return b
}

// Resolved sets the path text left in the buffer (output).
func (b *Builder) Resolved(path string) *Builder {
	b.entry.ResolvedPath = path
	return b
}

// Status sets the outcome name (output).
func (b *Builder) Status(status string) *Builder {
	b.entry.Status = status
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first.
// Returns nil without error if the logger is not initialised.
func Recent(limit int) ([]Entry, error) {
	return RecentSince(limit, time.Time{})
}

// RecentSince is Recent restricted to entries started at or after since.
// A zero since means no restriction.
func RecentSince(limit int, since time.Time) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	var cutoff int64
	if !since.IsZero() {
		cutoff = since.Unix()
	}
	return l.recent(limit, cutoff)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
