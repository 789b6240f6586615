package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jask/skincare/internal/database"
)

// SettingsRepo handles the settings key-value table.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get returns the stored value, or nil, nil when the key is absent.
func (r *SettingsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	s, err := r.Lookup(ctx, key)
	if err != nil || s == nil {
		return nil, err
	}
	return s.Value, nil
}

func (r *SettingsRepo) Lookup(ctx context.Context, key string) (*Setting, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM settings WHERE key = ?`, key)
	var s Setting
	if err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if s.Value == nil {
		s.Value = []byte{}
	}
	return &s, nil
}

// Put writes value under key, replacing any previous value.
func (r *SettingsRepo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO settings(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value, database.Now())
	return err
}

func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}
