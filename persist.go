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

package sigpad

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Persister stores committed signatures.  Persist returns a description of
// where the signature was stored, for example a file name.
type Persister interface {
	Persist(ctx context.Context, res *Result) (string, error)
}

// FileStore writes every signature to a new file in Dir.  File names have
// the form "Signature-<timestamp>.<ext>".
type FileStore struct {
	Dir    string
	Format Format

	// Now returns the time used in file names.  If nil, time.Now is used.
	Now func() time.Time
}

// timestampLayout avoids characters which are not allowed in file names on
// some systems.
const timestampLayout = "2006-01-02T15-04-05.000"

// NewFileStore returns a FileStore writing to dir.  If dir is empty,
// [DocumentsDir] is used.  The directory is created if needed.
func NewFileStore(dir string, format Format) (*FileStore, error) {
	if dir == "" {
		var err error
		dir, err = DocumentsDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("signature directory: %w", err)
	}
	return &FileStore{Dir: dir, Format: format}, nil
}

// DocumentsDir returns the directory where signatures are stored by
// default: "Documents" in the user's home directory if it exists,
// otherwise a "sigpad" directory below the user configuration directory.
func DocumentsDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		docs := filepath.Join(home, "Documents")
		if fi, err := os.Stat(docs); err == nil && fi.IsDir() {
			return docs, nil
		}
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no documents directory: %w", err)
	}
	return filepath.Join(cfg, "sigpad"), nil
}

// Persist implements the [Persister] interface.
func (s *FileStore) Persist(ctx context.Context, res *Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	base := "Signature-" + now().Format(timestampLayout)

	// Two commits within the same millisecond get numbered names.
	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s-%d", base, i)
		}
		fname := filepath.Join(s.Dir, name+s.Format.Ext())

		err := s.write(fname, res)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("storing signature: %w", err)
		}
		return fname, nil
	}
}

// write creates fname, which must not exist yet, and stores res in it.
func (s *FileStore) write(fname string, res *Result) error {
	if s.Format == FormatPDF {
		if _, err := os.Stat(fname); err == nil {
			return fs.ErrExist
		}
		return WritePDF(fname, res)
	}

	fd, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	err = s.Format.Encode(fd, res)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(fname)
	}
	return err
}
