// Package jsonfile persists the CMS state as two flat JSON files: an
// array of user records and the content document. Every mutation rewrites
// the whole file; a single mutex per store serialises all access, so two
// concurrent writers cannot interleave and drop updates.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store"
)

// Config carries the file locations and the collections to synthesise
// when a file does not exist yet.
type Config struct {
	UsersPath   string
	ContentPath string

	DefaultUsers   []domain.User
	DefaultContent domain.Document
}

// FileStore implements store.Store over the two JSON files. State is held
// in memory and flushed synchronously on every mutation.
type FileStore struct {
	mu sync.Mutex

	usersPath   string
	contentPath string

	users   []domain.User
	content domain.Document

	logger *slog.Logger
}

var _ store.Store = (*FileStore)(nil)

// Open loads both files, seeding each with its defaults when absent.
// Read errors other than "file not found" are fatal: a corrupt store
// should stop startup rather than be silently replaced.
func Open(cfg Config, logger *slog.Logger) (*FileStore, error) {
	s := &FileStore{
		usersPath:   cfg.UsersPath,
		contentPath: cfg.ContentPath,
		logger:      logger,
	}

	if err := loadOrSeed(cfg.UsersPath, &s.users, cfg.DefaultUsers); err != nil {
		return nil, fmt.Errorf("jsonfile: load users: %w", err)
	}
	if err := loadOrSeed(cfg.ContentPath, &s.content, cfg.DefaultContent); err != nil {
		return nil, fmt.Errorf("jsonfile: load content: %w", err)
	}

	logger.Info("record stores loaded",
		"users_file", cfg.UsersPath,
		"content_file", cfg.ContentPath,
		"users", len(s.users),
		"sections", len(s.content),
	)

	return s, nil
}

func (s *FileStore) Users() store.Users     { return usersRepo{s} }
func (s *FileStore) Content() store.Content { return contentRepo{s} }

func (s *FileStore) Close() error { return nil }

// loadOrSeed reads path into dst, or writes defaults there when the file
// does not exist yet.
func loadOrSeed[T any](path string, dst *T, defaults T) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		*dst = defaults
		return writeFile(path, defaults)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// writeFile persists v as pretty-printed JSON via a temp file + rename,
// so a crash mid-write can never truncate the store.
func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// saveUsers and saveContent flush under the caller's lock.
func (s *FileStore) saveUsers() error {
	return writeFile(s.usersPath, s.users)
}

func (s *FileStore) saveContent() error {
	return writeFile(s.contentPath, s.content)
}
