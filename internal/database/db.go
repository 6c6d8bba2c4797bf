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
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the table definitions for the three record kinds.  All
// identifiers are caller-assigned strings, so primary keys are VARCHAR
// rather than auto-increment.  The bookings index covers the slot
// lookup used by the conflict check.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           VARCHAR(64)  NOT NULL PRIMARY KEY,
		name         VARCHAR(255) NOT NULL DEFAULT '',
		email        VARCHAR(255) NOT NULL DEFAULT '',
		password     VARCHAR(255) NOT NULL DEFAULT '',
		role         VARCHAR(32)  NOT NULL DEFAULT '',
		student_id   VARCHAR(64)  NOT NULL DEFAULT '',
		department   VARCHAR(255) NOT NULL DEFAULT '',
		year_section VARCHAR(64)  NOT NULL DEFAULT '',
		mobile       VARCHAR(32)  NOT NULL DEFAULT '',
		is_blocked   BOOLEAN      NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS seats (
		id             VARCHAR(64)  NOT NULL PRIMARY KEY,
		label          VARCHAR(64)  NOT NULL DEFAULT '',
		seat_type      VARCHAR(32)  NOT NULL DEFAULT '',
		is_maintenance BOOLEAN      NOT NULL DEFAULT FALSE,
		x              INT          NOT NULL DEFAULT 0,
		y              INT          NOT NULL DEFAULT 0,
		rotation       INT          NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id         VARCHAR(64)  NOT NULL PRIMARY KEY,
		seat_id    VARCHAR(64)  NOT NULL DEFAULT '',
		user_id    VARCHAR(64)  NOT NULL DEFAULT '',
		user_name  VARCHAR(255) NOT NULL DEFAULT '',
		date       VARCHAR(32)  NOT NULL DEFAULT '',
		start_time VARCHAR(16)  NOT NULL DEFAULT '',
		end_time   VARCHAR(16)  NOT NULL DEFAULT '',
		timestamp  BIGINT       NOT NULL DEFAULT 0,
		status     VARCHAR(16)  NOT NULL DEFAULT '',
		INDEX idx_bookings_slot (seat_id, date, start_time, status)
	)`,
}

// EnsureSchema creates the three tables when they do not exist yet.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
