package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL UNIQUE,
	password BLOB NOT NULL,
	created  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	deadline    TEXT NOT NULL,
	status      TEXT NOT NULL,
	author_id   INTEGER NOT NULL REFERENCES users(id),
	created     TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_author ON tasks(author_id);

CREATE TABLE IF NOT EXISTS sessions (
	token   TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id),
	expires TIMESTAMP NOT NULL,
	created TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`

type Database struct {
	DB *sqlx.DB
}

func New(dsn string) (*Database, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("executing schema: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

func (d *Database) Ping() error {
	return d.DB.Ping()
}
