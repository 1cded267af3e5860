package repository

import (
	"context"
	"database/sql"
	"errors"
)

// UserRepo handles users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Insert(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO users(id, name, password_hash, avatar_url, created_at) VALUES (?, ?, ?, ?, ?);
	`, u.ID, u.Name, u.PasswordHash, u.AvatarURL, u.CreatedAt)
	return err
}

// Get returns the user with id, or nil when absent.
func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
	SELECT id, name, password_hash, avatar_url, created_at FROM users WHERE id = ?`, id))
}

// ByName returns the user with a case-insensitive name match, or nil when absent.
func (r *UserRepo) ByName(ctx context.Context, name string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
	SELECT id, name, password_hash, avatar_url, created_at FROM users WHERE name = ?`, name))
}

func (r *UserRepo) scanOne(row *sql.Row) (*User, error) {
	var u User
	var avatar sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &avatar, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if avatar.Valid && avatar.String != "" {
		u.AvatarURL = &avatar.String
	}
	return &u, nil
}
