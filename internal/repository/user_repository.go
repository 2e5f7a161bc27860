package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadlatif13/movieapp/internal/utils"
)

// User mirrors the 'users' table. Password holds the bcrypt hash and is
// never serialized into responses.
type User struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, inserts the user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?,?)",
		username, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by its unique username.  Returns ErrNotFound
// when no such account exists.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}
