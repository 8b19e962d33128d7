package profile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileStore persists one YAML document per user under a base directory.
// It is the default Store for single-node deployments; swap in a database
// backed implementation behind the same interface for anything bigger.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the base directory when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("profile: store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile: create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) (string, error) {
	if userID == "" || strings.ContainsAny(userID, "/\\") || strings.Contains(userID, "..") {
		return "", fmt.Errorf("profile: invalid user id %q", userID)
	}
	return filepath.Join(s.dir, userID+".yaml"), nil
}

// Get loads the user's profile, returning ErrNotFound when none is saved.
func (s *FileStore) Get(ctx context.Context, userID string) (*IndustryProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(userID)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("profile: user %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	var p IndustryProfile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("profile: decode %s: %w", path, err)
	}
	return &p, nil
}

// Put saves the user's profile, replacing any previous one.
func (s *FileStore) Put(ctx context.Context, userID string, p *IndustryProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil {
		return errors.New("profile: nil profile")
	}
	path, err := s.path(userID)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile: encode profile: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	return nil
}
