package avrconf

import (
	"maps"
	"slices"
	"sync"
)

// Files is a registry of parsed files keyed by path.  It is safe for
// concurrent use; each ConfigFile it holds belongs to the registry until it
// is erased or replaced.
type Files struct {
	mu sync.Mutex
	m  map[string]*ConfigFile
}

func NewFiles() *Files {
	return &Files{m: map[string]*ConfigFile{}}
}

// Get returns the file registered for path, or nil.
func (fs *Files) Get(path string) *ConfigFile {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.m[path]
}

// Erase drops the file registered for path.
func (fs *Files) Erase(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.m, path)
}

// Adopt registers f for path, replacing and releasing any file registered
// before.
func (fs *Files) Adopt(path string, f *ConfigFile) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.m[path] = f
}

// Load parses the file at path and registers it.  On error nothing is
// registered and any previous registration for path is kept.
func (fs *Files) Load(path string, opts ...Option) (*ConfigFile, error) {
	f := New(opts...)
	if err := f.ReadFile(path); err != nil {
		return nil, err
	}
	fs.Adopt(path, f)
	return f, nil
}

// Paths returns the registered paths, sorted.
func (fs *Files) Paths() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return slices.Sorted(maps.Keys(fs.m))
}
