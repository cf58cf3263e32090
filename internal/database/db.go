package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the table definitions for the listing site. Ids are
// AUTO_INCREMENT so concurrent creates never race on id assignment. The
// shows table cascades on venue/artist deletion, and artist names are unique
// under the case-insensitive collation.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state CHAR(2) NOT NULL,
		address VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		genres VARCHAR(512) NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(500) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL,
		PRIMARY KEY (id),
		KEY idx_venues_city_state (city, state)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS artists (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state CHAR(2) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		genres VARCHAR(512) NOT NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(500) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_artists_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS shows (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		venue_id BIGINT UNSIGNED NOT NULL,
		artist_id BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_shows_venue (venue_id),
		KEY idx_shows_artist (artist_id),
		CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE CASCADE,
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// MigrateSchema creates the venues, artists and shows tables when they do not
// exist yet. It is safe to call on every boot.
func MigrateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
