package database

import (
	"context"
	"database/sql"
)

// schema holds the DDL for the three application tables.  Both watchlist and
// reviews carry a composite unique key on (user_id, movie_id); the upsert
// statements in the repositories rely on those keys existing.  Statements
// use IF NOT EXISTS so applying the schema on every start is harmless.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		password VARCHAR(100) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS watchlist (
		id INT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id INT UNSIGNED NOT NULL,
		movie_id INT UNSIGNED NOT NULL,
		title VARCHAR(255) NOT NULL,
		poster_path VARCHAR(255) NULL,
		vote_average DECIMAL(3,1) NULL,
		release_date VARCHAR(32) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_watchlist_user_movie (user_id, movie_id),
		CONSTRAINT fk_watchlist_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id INT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id INT UNSIGNED NOT NULL,
		movie_id INT UNSIGNED NOT NULL,
		rating TINYINT UNSIGNED NOT NULL,
		comment TEXT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_reviews_user_movie (user_id, movie_id),
		CONSTRAINT fk_reviews_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// ApplySchema creates the application tables if they do not exist yet.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
