// Package testutil provides an in-memory database harness for service and
// handler tests. The schema mirrors the goose migrations closely enough for
// the portable SQL the services use.
package testutil

import (
	"testing"

	"solutions-admin/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE admin_users (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    email          TEXT NOT NULL,
    password_hash  TEXT,
    name           TEXT NOT NULL,
    role           TEXT NOT NULL DEFAULT 'admin',
    is_active      BOOLEAN NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_signed_in TIMESTAMP
);
CREATE UNIQUE INDEX admin_users_email_idx ON admin_users (email);

CREATE TABLE pages (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    slug             TEXT NOT NULL,
    title            TEXT NOT NULL,
    subtitle         TEXT,
    description      TEXT,
    cover_image      TEXT,
    solution_key     TEXT,
    status           TEXT NOT NULL DEFAULT 'draft',
    meta_title       TEXT,
    meta_description TEXT,
    meta_keywords    TEXT,
    og_image         TEXT,
    canonical_url    TEXT,
    video_id         INTEGER,
    blocks           TEXT NOT NULL DEFAULT '[]',
    published_at     TIMESTAMP,
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX pages_slug_idx ON pages (slug);

CREATE TABLE videos (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT NOT NULL,
    description  TEXT,
    source       TEXT NOT NULL,
    url          TEXT NOT NULL,
    embed_code   TEXT,
    thumbnail    TEXT,
    duration     TEXT,
    position     TEXT NOT NULL DEFAULT 'after_hero',
    cta_text     TEXT,
    cta_url      TEXT,
    support_text TEXT,
    is_active    BOOLEAN NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE ctas (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id   INTEGER NOT NULL,
    label     TEXT NOT NULL,
    url       TEXT NOT NULL,
    style     TEXT NOT NULL DEFAULT 'primary',
    position  INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE media_files (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    filename   TEXT NOT NULL,
    url        TEXT NOT NULL,
    mime_type  TEXT,
    size       INTEGER,
    alt        TEXT,
    page_id    INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE leads (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id    INTEGER,
    page_slug  TEXT,
    name       TEXT NOT NULL,
    email      TEXT,
    phone      TEXT,
    message    TEXT,
    status     TEXT NOT NULL DEFAULT 'new',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE settings (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    setting_key   TEXT NOT NULL,
    setting_value TEXT,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX settings_key_idx ON settings (setting_key);
`

// SetupDB points the global database handle at a fresh in-memory instance
// and restores the previous handle when the test finishes.
func SetupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:?_loc=UTC")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply test schema: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		db.Close()
	})

	return db
}
