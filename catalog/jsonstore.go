package catalog

import (
	"context"
	"encoding/json"
	"os"

	"go-register/models"
)

// FileStore keeps the override layer in a small JSON file next to the
// register data. Writes go to a temp file first and are renamed into
// place so a crash mid-save never corrupts the overrides.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the override map. A missing file is an empty layer, not
// an error: a fresh register starts without overrides.
func (s *FileStore) Load(_ context.Context) (map[string]models.Product, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Product{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var out map[string]models.Product
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]models.Product{}
	}
	return out, nil
}

// Save writes the override map atomically (temp file + rename).
func (s *FileStore) Save(_ context.Context, overrides map[string]models.Product) error {
	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(overrides); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
