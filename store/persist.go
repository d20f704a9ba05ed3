package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"VideoSuite-server/models"
)

// Persister writes the full project collection wholesale and reads it back.
// There is no incremental diff and no schema versioning.
type Persister interface {
	Save(projects map[string]*models.Project) error
	Load() (map[string]*models.Project, error)
}

// FileStore keeps the whole collection as one JSON document on disk.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Save(projects map[string]*models.Project) error {
	b, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, b, 0o644)
}

// Load returns an empty collection when nothing was saved yet or the stored
// payload is malformed. Malformed payloads are logged, never returned as
// errors.
func (f *FileStore) Load() (map[string]*models.Project, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.Project{}, nil
		}
		return nil, err
	}
	projects := map[string]*models.Project{}
	if err := json.Unmarshal(b, &projects); err != nil {
		log.Printf("discarding corrupt project store at %s: %v", f.Path, err)
		return map[string]*models.Project{}, nil
	}
	return projects, nil
}
