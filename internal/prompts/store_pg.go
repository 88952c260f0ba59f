package prompts

import (
	"context"
	"database/sql"
	"time"
)

// PGStore persists the override snapshot in Postgres, one row per overridden
// prompt. Save replaces the whole table contents in a transaction so the
// read-modify-write contract matches the file store.
type PGStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed override store.
func NewPGStore(database *sql.DB) *PGStore {
	return &PGStore{DB: database}
}

// Load reads every override row into a snapshot.
func (s *PGStore) Load(ctx context.Context) (Snapshot, error) {
	snap := EmptySnapshot()

	rows, err := s.DB.QueryContext(ctx, `
SELECT prompt_id, custom_content, custom_name, enabled FROM prompt_overrides`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			promptID      string
			customContent sql.NullString
			customName    sql.NullString
			enabled       sql.NullBool
		)
		if err := rows.Scan(&promptID, &customContent, &customName, &enabled); err != nil {
			return Snapshot{}, err
		}
		if customContent.Valid && customContent.String != "" {
			snap.Prompts[promptID] = customContent.String
		}
		var pref Preference
		hasPref := false
		if customName.Valid {
			name := customName.String
			pref.CustomName = &name
			hasPref = true
		}
		if enabled.Valid {
			value := enabled.Bool
			pref.Enabled = &value
			hasPref = true
		}
		if hasPref {
			snap.Preferences[promptID] = pref
		}
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Save replaces all override rows with the snapshot contents.
func (s *PGStore) Save(ctx context.Context, snap Snapshot) error {
	snap = snap.normalized()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM prompt_overrides`); err != nil {
		return err
	}

	now := time.Now().UTC()
	// Catalog order keeps writes deterministic.
	for _, def := range catalog {
		content, hasContent := snap.Prompts[def.ID]
		pref, hasPref := snap.Preferences[def.ID]
		if !hasContent && !hasPref {
			continue
		}

		var customContent, customName any
		var enabled any
		if hasContent && content != "" {
			customContent = content
		}
		if pref.CustomName != nil {
			customName = *pref.CustomName
		}
		if pref.Enabled != nil {
			enabled = *pref.Enabled
		}

		if _, err = tx.ExecContext(ctx, `
INSERT INTO prompt_overrides (prompt_id, custom_content, custom_name, enabled, updated_at)
VALUES ($1, $2, $3, $4, $5)`, def.ID, customContent, customName, enabled, now); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

var _ Store = (*PGStore)(nil)
