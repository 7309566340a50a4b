package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/model"
)

// FileStore implements Store with a single pretty-printed JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

// NewFileStore creates a store persisting to path. A nil logger disables
// logging.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (*model.Document, error) {
	doc := model.NewDocument()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		s.log.Warn("journal unreadable, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return doc, nil
	}

	if err := json.Unmarshal(b, doc); err != nil {
		s.log.Warn("journal corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return model.NewDocument(), nil
	}
	return doc, nil
}

func (s *FileStore) Save(ctx context.Context, doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *FileStore) save(doc *model.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot corrupt the journal.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace journal: %w", err)
	}
	return nil
}

func (s *FileStore) Update(ctx context.Context, fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *FileStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	s.log.Info("journal deleted", zap.String("path", s.path))
	return nil
}
