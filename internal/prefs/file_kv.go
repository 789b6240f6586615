// Package prefs stores key-value slots in a single JSON file under the user's
// config directory.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const defaultFile = "routines.json"

// DefaultPath returns <user config dir>/skincare/routines.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "skincare", defaultFile), nil
}

// FileKV keeps every slot in one JSON object on disk. Writes go to a temp file
// that is renamed over the original.
type FileKV struct {
	path string
	mu   sync.Mutex
}

func NewFileKV(path string) *FileKV { return &FileKV{path: path} }

func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := slots[key]
	if !ok {
		return nil, nil
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots, err := f.read()
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	slots[key] = value
	return f.write(slots)
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return f.write(slots)
}

// read returns an empty map when the file does not exist yet.
func (f *FileKV) read() (map[string][]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]byte{}, nil
		}
		return nil, err
	}
	slots := map[string][]byte{}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return slots, nil
}

func (f *FileKV) write(slots map[string][]byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
