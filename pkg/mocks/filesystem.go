package mocks

import (
	"fmt"
	iofs "io/fs"
	"path"
	"strings"
	"sync"

	"github.com/user/videobarcode/pkg/ports"
)

// FileSystem is an in-memory ports.FileSystem.
// Set a Func field to override one operation.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// Writes records every successful WriteFile path, in order.
	Writes []string

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
}

// NewFileSystem creates an empty FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) ReadFile(p string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", iofs.ErrNotExist, p)
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data, so later changes by the caller are not seen.
func (m *FileSystem) WriteFile(p string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(p, data)
	}
	m.AddFile(p, data)
	m.mu.Lock()
	m.Writes = append(m.Writes, p)
	m.mu.Unlock()
	return nil
}

func (m *FileSystem) MkdirAll(p string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path.Clean(p)] = true
	return nil
}

// Exists reports stored files, created directories and any directory that
// holds a stored file.
func (m *FileSystem) Exists(p string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = path.Clean(p)
	if _, ok := m.files[p]; ok || m.dirs[p] {
		return true, nil
	}
	for name := range m.files {
		if strings.HasPrefix(name, p+"/") {
			return true, nil
		}
	}
	return false, nil
}

// AddFile stores a file without recording a write.
func (m *FileSystem) AddFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path.Clean(p)] = append([]byte(nil), data...)
}

// GetFile returns the stored contents of p.
func (m *FileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	return data, ok
}

// Files returns a snapshot of every stored file.
func (m *FileSystem) Files() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.files))
	for k, v := range m.files {
		out[k] = v
	}
	return out
}

var _ ports.FileSystem = (*FileSystem)(nil)
