package prompts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the override snapshot as a single pretty-printed JSON
// document, rewritten wholesale on every save via temp-file rename.
type FileStore struct {
	Path string
}

// NewFileStore constructs a file-backed store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot from disk. A missing or unparsable file is treated
// as an empty store.
func (s *FileStore) Load(ctx context.Context) (Snapshot, error) {
	_ = ctx
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return EmptySnapshot(), nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return EmptySnapshot(), nil
	}
	return snap.normalized(), nil
}

// Save writes the snapshot atomically, creating parent directories as needed.
func (s *FileStore) Save(ctx context.Context, snap Snapshot) error {
	_ = ctx
	snap = snap.normalized()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode prompts file: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prompts dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prompts-*.json")
	if err != nil {
		return fmt.Errorf("create temp prompts file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write prompts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close prompts file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace prompts file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
