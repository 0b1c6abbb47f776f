package database

import (
	"context"
	"database/sql"
	"time"
)

// schema holds the idempotent DDL for the five application tables.
// Only accounts.username carries a uniqueness constraint; milk-entry
// and pairing uniqueness are enforced by the handlers with explicit
// pre-write checks, and the blacklist is an append-only token list.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		role          VARCHAR(50)  NOT NULL,
		username      VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seller_buyer_mapping (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		seller_id   BIGINT UNSIGNED NOT NULL,
		buyer_id    BIGINT UNSIGNED NOT NULL,
		seller_name VARCHAR(255) NOT NULL,
		buyer_name  VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS milk_info (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		seller_id      BIGINT UNSIGNED NOT NULL,
		buyer_id       BIGINT UNSIGNED NOT NULL,
		date           DATE NOT NULL,
		milk_in_litres DOUBLE NOT NULL,
		fat            DOUBLE NOT NULL,
		shift          VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		seller_id    BIGINT UNSIGNED NOT NULL,
		buyer_id     BIGINT UNSIGNED NOT NULL,
		start_date   DATE NOT NULL,
		end_date     DATE NOT NULL,
		rate         DOUBLE NOT NULL,
		total_amount DOUBLE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blacklist_tokens (
		id    BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		token TEXT NOT NULL
	)`,
}

// EnsureSchema creates the application tables if they do not exist.
// Safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
