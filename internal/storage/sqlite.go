// Package storage provides SQLite-based persistence for captured frames.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/term-racer/internal/core"
)

// ErrNoRun is returned when a scenario has no stored capture run.
var ErrNoRun = errors.New("storage: no capture run")

// Store manages the SQLite database connection for the capture archive.
type Store struct {
	db *sql.DB
}

// Capture is one rendered frame of a capture run.
type Capture struct {
	ID        int64
	RunID     string
	Scenario  string
	Frame     int
	Width     int
	Height    int
	SHA256    string
	Content   string
	CreatedAt time.Time
}

// RunSummary describes one stored capture run.
type RunSummary struct {
	RunID     string
	Scenario  string
	Frames    int
	Width     int
	Height    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS captures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			scenario TEXT NOT NULL,
			frame INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			sha256 TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (run_id, frame)
		);
		CREATE INDEX IF NOT EXISTS idx_captures_scenario ON captures(scenario, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores the frames of one run atomically. Every capture is filed
// under runID.
func (s *Store) SaveRun(runID string, frames []Capture) error {
	if runID == "" {
		return fmt.Errorf("storage: empty run ID")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO captures (run_id, scenario, frame, width, height, sha256, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range frames {
		if _, err := stmt.Exec(runID, c.Scenario, c.Frame, c.Width, c.Height, c.SHA256, c.Content); err != nil {
			return fmt.Errorf("storage: cannot save frame %d: %w", c.Frame, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

// LatestRun returns the frames of the most recent run of scenario, ordered by
// frame. It returns ErrNoRun if the scenario was never captured.
func (s *Store) LatestRun(scenario string) ([]Capture, error) {
	var runID string
	err := s.db.QueryRow(
		`SELECT run_id FROM captures WHERE scenario = ? ORDER BY id DESC LIMIT 1`,
		scenario,
	).Scan(&runID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w for %s", ErrNoRun, scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query latest run: %w", err)
	}

	return s.Run(runID)
}

// Run returns the frames of a run ordered by frame.
func (s *Store) Run(runID string) ([]Capture, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, scenario, frame, width, height, sha256, content, created_at
		 FROM captures
		 WHERE run_id = ?
		 ORDER BY frame`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var out []Capture
	for rows.Next() {
		var c Capture
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.Scenario, &c.Frame, &c.Width, &c.Height,
			&c.SHA256, &c.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoRun, runID)
	}
	return out, nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT run_id, scenario, COUNT(*), MAX(width), MAX(height), MIN(created_at)
		 FROM captures
		 GROUP BY run_id
		 ORDER BY MAX(id) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt any
		if err := rows.Scan(&r.RunID, &r.Scenario, &r.Frames, &r.Width, &r.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteRun removes every frame of a run.
func (s *Store) DeleteRun(runID string) error {
	_, err := s.db.Exec("DELETE FROM captures WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Digest hashes every cell of s: rune, colors and attributes, row by row.
// Two screens with the same digest draw the same frame.
func Digest(s *core.Screen) string {
	h := sha256.New()
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(s.Width()))
	binary.LittleEndian.PutUint32(buf[4:], uint32(s.Height()))
	h.Write(buf[:8])

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			binary.LittleEndian.PutUint32(buf[0:], uint32(c.Rune))
			binary.LittleEndian.PutUint32(buf[4:], uint32(c.Style.Fg))
			binary.LittleEndian.PutUint32(buf[8:], uint32(c.Style.Bg))
			binary.LittleEndian.PutUint32(buf[12:], uint32(c.Style.Attrs))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// NewCapture records the current contents of s as frame of scenario.
func NewCapture(scenario string, frame int, s *core.Screen) Capture {
	return Capture{
		Scenario: scenario,
		Frame:    frame,
		Width:    s.Width(),
		Height:   s.Height(),
		SHA256:   Digest(s),
		Content:  s.String(),
	}
}
