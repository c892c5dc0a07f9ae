// seehuhn.de/go/sigpad - signature capture and input validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sqlitestore keeps signatures in an SQLite database.
//
// Images are stored as PNG.  A signature which is already present, pixel
// for pixel, is not stored a second time.
package sqlitestore

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/blake2b"

	"seehuhn.de/go/sigpad"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned by Get and Delete for unknown ids.
var ErrNotFound = errors.New("signature not found")

// Store is a signature database.  It implements [sigpad.Persister].
type Store struct {
	db *sql.DB

	// Now returns the creation time for new records.  If nil, the current
	// time is used.
	Now func() time.Time
}

// Record describes a stored signature.
type Record struct {
	ID      string
	Width   int
	Height  int
	Created time.Time
	PNG     []byte // nil in the results of List
}

// Open opens the database at path, creating it if needed, and brings the
// schema up to date.
func Open(path string) (*Store, error) {
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return &Store{db: db}, nil
}

// runMigrations applies all embedded up migrations.  The migration uses its
// own connection, which is closed afterwards.
func runMigrations(path string) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC().Truncate(time.Second)
}

// Persist stores the image of res and returns the id of its record.  If
// the same image is stored already, the existing id is returned.
func (s *Store) Persist(ctx context.Context, res *sigpad.Result) (string, error) {
	buf := &bytes.Buffer{}
	if err := sigpad.FormatPNG.Encode(buf, res); err != nil {
		return "", err
	}
	data := buf.Bytes()
	digest := blake2b.Sum256(data)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO signatures (id, digest, width, height, png, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(digest) DO NOTHING`,
		uuid.NewString(), digest[:], res.Width, res.Height, data, s.now())
	if err != nil {
		return "", fmt.Errorf("storing signature: %w", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM signatures WHERE digest = ?`, digest[:]).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("storing signature: %w", err)
	}
	return id, nil
}

// Get returns the record with the given id, including the image data.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	rec := &Record{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, width, height, created_at, png FROM signatures WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Created, &rec.PNG)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns all records, oldest first.  The image data is not loaded.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, width, height, created_at FROM signatures ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Created); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	r, err := s.db.ExecContext(ctx, `DELETE FROM signatures WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := r.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
