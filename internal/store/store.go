// Package store persists a snapshot of the playback queue to sqlite so a
// host application can restore it across restarts. The engine itself
// (internal/manager) is pure in-memory and owns no knowledge of this
// package; store is the external collaborator the specification carves
// out as "persisted state layout is external."
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rina-voss/soundqueue/internal/db"
)

// Store wraps a sqlite connection holding exactly one queue snapshot.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) the parent directory of path and opens or
// initializes the snapshot database there.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &Store{db: sqlDB}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// currentSchemaVersion is stamped on every snapshot saved by this build.
// Rows written before this field existed read back as schema_version 0
// via db.NullInt64Value, rather than erroring on the unpopulated column.
const currentSchemaVersion = 1

func initSchema(sqlDB *sql.DB) error {
	_, err := sqlDB.Exec(`
		CREATE TABLE IF NOT EXISTS queue_snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_song_id INTEGER NOT NULL DEFAULT -1,
			session_id TEXT,
			saved_at_unix_milli INTEGER,
			schema_version INTEGER
		);

		CREATE TABLE IF NOT EXISTS queue_snapshot_songs (
			position INTEGER PRIMARY KEY,
			song_id INTEGER NOT NULL
		);
	`)
	return err
}

// Snapshot is the persisted view of a Manager's queue: the ordered song
// IDs and which one held the playback cursor.
//
// SessionID and SavedAtUnixMilli are optional: a caller saving without a
// session context (or a row written before these columns existed) leaves
// them unset, so the underlying columns are nullable.
type Snapshot struct {
	SongIDs       []int64
	CurrentSongID int64

	SessionID        string
	SavedAtUnixMilli *int64
	SchemaVersion    int
}

// Save replaces any previously stored snapshot with snap, atomically.
func (s *Store) Save(snap Snapshot) error {
	return db.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM queue_snapshot_songs`); err != nil {
			return err
		}

		var sessionID sql.NullString
		if snap.SessionID != "" {
			sessionID = sql.NullString{String: snap.SessionID, Valid: true}
		}
		var savedAt sql.NullInt64
		if snap.SavedAtUnixMilli != nil {
			savedAt = sql.NullInt64{Int64: *snap.SavedAtUnixMilli, Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO queue_snapshot (id, current_song_id, session_id, saved_at_unix_milli, schema_version)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_song_id = excluded.current_song_id,
				session_id = excluded.session_id,
				saved_at_unix_milli = excluded.saved_at_unix_milli,
				schema_version = excluded.schema_version
		`, snap.CurrentSongID, sessionID, savedAt, currentSchemaVersion)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO queue_snapshot_songs (position, song_id) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range snap.SongIDs {
			if _, err := stmt.Exec(i, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the last saved snapshot. It returns (nil, nil) when no
// snapshot has ever been saved.
func (s *Store) Load() (*Snapshot, error) {
	var currentSongID int64
	var sessionID sql.NullString
	var savedAt sql.NullInt64
	var schemaVersion sql.NullInt64

	row := s.db.QueryRow(`SELECT current_song_id, session_id, saved_at_unix_milli, schema_version FROM queue_snapshot WHERE id = 1`)
	if err := row.Scan(&currentSongID, &sessionID, &savedAt, &schemaVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil // no saved snapshot is a valid first-run state
		}
		return nil, err
	}

	rows, err := s.db.Query(`SELECT song_id FROM queue_snapshot_songs ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Snapshot{
		SongIDs:          ids,
		CurrentSongID:    currentSongID,
		SessionID:        db.NullStringValue(sessionID),
		SavedAtUnixMilli: db.NullInt64ToPtr(savedAt),
		SchemaVersion:    int(db.NullInt64Value(schemaVersion)),
	}, nil
}
