package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

var _ SeenRepository = (*SQLSeenRepository)(nil)

// SQLSeenRepository persists seen entries in SQLite. Inserts are
// idempotent; concurrent duplicate inserts for the same key are no-ops.
type SQLSeenRepository struct {
	db        *DB
	fromStart bool
}

func NewSeenRepository(db *DB, fromStart bool) *SQLSeenRepository {
	return &SQLSeenRepository{db: db, fromStart: fromStart}
}

// IsNew reports whether no record exists for (feedName, entryID). An empty
// entry ID is always novel. Store errors also report novel: duplicate
// announcement is an acceptable degradation, permanent suppression is not.
func (r *SQLSeenRepository) IsNew(feedName, entryID string) bool {
	if entryID == "" {
		slog.Warn("No entry ID found for entry, treating as new", "feed", feedName)
		return true
	}

	if r.fromStart {
		return true
	}

	var exists int
	err := r.db.QueryRow(`
		SELECT 1 FROM seen_entries WHERE feed_name = ? AND entry_id = ?
	`, feedName, entryID).Scan(&exists)

	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}

	slog.Error("Failed to check seen entry, treating as new", "feed", feedName, "entry_id", entryID, "error", err)
	return true
}

// MarkSeen records an entry as delivered. Duplicate inserts are silently
// ignored; blank IDs are never persisted so that future entries with blank
// identifiers are not permanently hidden.
func (r *SQLSeenRepository) MarkSeen(feedName, entryID string) error {
	if entryID == "" {
		return nil
	}

	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO seen_entries (feed_name, entry_id) VALUES (?, ?)
	`, feedName, entryID)
	if err != nil {
		return fmt.Errorf("failed to mark entry seen: %w", err)
	}

	return nil
}

// LoadAll returns the full seen set, keyed by feed name, for warm-start
// reconstruction.
func (r *SQLSeenRepository) LoadAll() (map[string][]string, error) {
	rows, err := r.db.Query(`SELECT feed_name, entry_id FROM seen_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to load seen entries: %w", err)
	}
	defer rows.Close()

	seen := make(map[string][]string)
	for rows.Next() {
		var feedName, entryID string
		if err := rows.Scan(&feedName, &entryID); err != nil {
			return nil, fmt.Errorf("failed to scan seen entry row: %w", err)
		}
		seen[feedName] = append(seen[feedName], entryID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seen entry rows: %w", err)
	}

	return seen, nil
}

// CountByFeed returns per-feed seen counts for the stats endpoint.
func (r *SQLSeenRepository) CountByFeed() (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT feed_name, COUNT(*) FROM seen_entries GROUP BY feed_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count seen entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var feedName string
		var count int
		if err := rows.Scan(&feedName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[feedName] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	return counts, nil
}

func (r *SQLSeenRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM seen_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count seen entries: %w", err)
	}
	return count, nil
}
