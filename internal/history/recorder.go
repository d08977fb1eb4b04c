package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Entry is one rendered track in the play history.
type Entry struct {
	Timestamp time.Time
	Device    string
	Title     string
	Artist    string
}

// Recorder receives every successfully rendered track. Recording is an
// observability concern: recorder failures are logged by the caller, not
// turned into playback failures.
type Recorder interface {
	RecordPlay(entry Entry) error
}

// DBRecorder persists play history to SQLite.
type DBRecorder struct {
	db *sql.DB
}

// NewDBRecorder creates a recorder writing to the given database.
func NewDBRecorder(db *sql.DB) *DBRecorder {
	return &DBRecorder{db: db}
}

// RecordPlay inserts one play into the history table.
func (r *DBRecorder) RecordPlay(entry Entry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.db.Exec(
		"INSERT INTO plays (timestamp, device, title, artist) VALUES (?, ?, ?, ?)",
		ts.Unix(), entry.Device, entry.Title, entry.Artist,
	)
	if err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}

	slog.Debug("play recorded",
		"device", entry.Device,
		"title", entry.Title,
		"artist", entry.Artist)
	return nil
}

// RecentPlays returns the most recent entries, newest first.
func RecentPlays(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		"SELECT timestamp, device, title, artist FROM plays ORDER BY timestamp DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			ts    int64
			entry Entry
		)
		if err := rows.Scan(&ts, &entry.Device, &entry.Title, &entry.Artist); err != nil {
			return nil, fmt.Errorf("failed to scan play row: %w", err)
		}
		entry.Timestamp = time.Unix(ts, 0)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate play rows: %w", err)
	}

	return entries, nil
}
