// Package store persists health records as append-only flat files, one file
// per category, and scans them back in file order.
//
// Each record is one CSV line. Free-text fields are quoted when they carry a
// delimiter or a quote, and line breaks are rejected. Lines written by older
// builds without quoting still decode to their comma-split fields.
package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/ongvang00/HealthManagementSystem/internal/filelock"
	"github.com/ongvang00/HealthManagementSystem/internal/logger"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
)

// Record is one decoded line of a category file.
type Record struct {
	// Line is the 1-based physical line number.
	Line   int
	Fields []string
	// Unquoted is set when the line is not well-formed CSV and Fields come
	// from a plain comma split.
	Unquoted bool
}

// Store is bound to one data directory.
type Store struct {
	dir string
	log logger.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for store and analysis diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open binds a Store to dir, creating the directory when missing.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &Store{dir: dir, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Logger() logger.Logger {
	return s.log
}

// Path returns the backing file of a category.
func (s *Store) Path(c model.Category) string {
	return filepath.Join(s.dir, c.FileName())
}

// Append writes fields as one line at the end of the category file. The
// file is created when absent and closed before Append returns.
func (s *Store) Append(c model.Category, fields ...string) error {
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", c)
	}
	if len(fields) != c.Arity() {
		return fmt.Errorf("append %s: expected %d fields, got %d", c, c.Arity(), len(fields))
	}
	for i, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("append %s: field %d contains a line break", c, i+1)
		}
	}
	line, err := encodeLine(fields)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c, err)
	}

	path := s.Path(c)
	err = filelock.With(path, func() error {
		return appendLine(path, line)
	})
	if err != nil {
		return fmt.Errorf("append %s record: %w", c, err)
	}
	s.log.Debugf("appended %s record to %s", c, path)
	return nil
}

func encodeLine(fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendLine(path string, line []byte) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadAll yields every record of a category in file order, one per
// non-blank physical line. A missing file yields nothing. A line that is not
// well-formed CSV is split on every comma. A read error ends the sequence.
// The file stays open only while the caller ranges over the sequence.
func (s *Store) ReadAll(c model.Category) iter.Seq2[Record, error] {
	path := s.Path(c)
	return func(yield func(Record, error) bool) {
		if !c.Valid() {
			yield(Record{}, fmt.Errorf("unknown category %q", c))
			return
		}
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield(Record{}, fmt.Errorf("open %s: %w", path, err))
			return
		}
		defer f.Close()

		br := bufio.NewReader(f)
		lineNo := 0
		for {
			text, err := br.ReadString('\n')
			if len(text) > 0 {
				lineNo++
				text = strings.TrimRight(text, "\r\n")
				if text != "" {
					fields, unquoted := decodeLine(text)
					if !yield(Record{Line: lineNo, Fields: fields, Unquoted: unquoted}, nil) {
						return
					}
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Record{}, fmt.Errorf("read %s: %w", path, err))
				return
			}
		}
	}
}

// decodeLine parses one line on its own, so a stray quote never reaches
// into the lines after it. Lines written before quoting existed fall back
// to a comma split.
func decodeLine(line string) ([]string, bool) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ","), true
	}
	return fields, false
}
