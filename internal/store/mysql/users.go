package mysql

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

const selectUser = "SELECT id, name, email, password_hash, role, created_at FROM users"

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.DB.QueryContext(ctx, selectUser+" ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var (
			u    model.User
			role string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return s.getUser(ctx, selectUser+" WHERE id=? LIMIT 1", id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.getUser(ctx, selectUser+" WHERE email=? LIMIT 1", strings.ToLower(strings.TrimSpace(email)))
}

func (s *Store) getUser(ctx context.Context, query, arg string) (model.User, error) {
	var (
		u    model.User
		role string
	)
	err := s.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		return model.User{}, mapErr(err)
	}
	u.Role = model.Role(role)
	return u, nil
}

func (s *Store) InsertUser(ctx context.Context, u model.User) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, created_at) VALUES (?,?,?,?,?,?)",
		u.ID, u.Name, strings.ToLower(u.Email), u.PasswordHash, string(u.Role), u.CreatedAt)
	return mapErr(err)
}

func (s *Store) UpdateUser(ctx context.Context, u model.User) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE users SET name=?, email=?, password_hash=?, role=? WHERE id=?",
		u.Name, strings.ToLower(u.Email), u.PasswordHash, string(u.Role), u.ID)
	if err != nil {
		return mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=? LIMIT 1", u.ID).Scan(&one); err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (s *Store) SaveRefresh(ctx context.Context, hash, userID string, expires time.Time) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (token_hash, user_id, expires_at) VALUES (?,?,?)",
		hash, userID, expires)
	return mapErr(err)
}

func (s *Store) LookupRefresh(ctx context.Context, hash string) (string, error) {
	var (
		userID    string
		expiresAt time.Time
	)
	err := s.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at FROM refresh_tokens WHERE token_hash=? LIMIT 1", hash).
		Scan(&userID, &expiresAt)
	if err != nil {
		return "", mapErr(err)
	}
	if time.Now().UTC().After(expiresAt) {
		return "", store.ErrNotFound
	}
	return userID, nil
}

func (s *Store) DeleteRefresh(ctx context.Context, hash string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM refresh_tokens WHERE token_hash=?", hash)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}
