package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Defaulter is implemented by records that fill fields their constructor would
// have set when those fields are absent from the file.
type Defaulter interface {
	ApplyDefaults()
}

// ErrTrailingData is returned when a collection file holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after collection array")

// Store maps an ordered collection of flat records to a JSON array file.
type Store[T any] struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store backed by the file at path.
func NewStore[T any](path string, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		path:   path,
		logger: logger.With("component", "store", "path", path),
	}
}

// Path returns the backing file location.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the whole collection in file order. A missing file is an empty
// collection, not an error.
func (s *Store[T]) Load() ([]T, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("collection file not found, starting with an empty collection")
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer file.Close()

	var records []T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", s.path, ErrTrailingData)
	}
	if records == nil {
		records = []T{}
	}

	for i := range records {
		if d, ok := any(&records[i]).(Defaulter); ok {
			d.ApplyDefaults()
		}
	}

	s.logger.Debug("collection loaded", "count", len(records))
	return records, nil
}

// Save replaces the file content with records. The write is not atomic: a crash
// mid-write can leave a truncated file.
func (s *Store[T]) Save(records []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if records == nil {
		records = []T{}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode json for %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	s.logger.Info("collection saved", "count", len(records))
	return nil
}
