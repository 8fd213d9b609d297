// Package imagestore provides thread-safe in-memory storage of uploaded
// image bytes, keyed by opaque generated handles.
//
// Entries are insert-once and immutable thereafter: Put validates and
// stores the bytes under a fresh handle, and no operation ever rewrites an
// existing entry. That discipline is what makes concurrent Fetch calls
// from in-flight generation requests safe without per-entry locking.
package imagestore

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates the handle does not resolve to a stored image.
var ErrNotFound = errors.New("imagestore: image not found")

// ErrUnsupportedFormat indicates the uploaded bytes are not a decodable
// PNG, JPEG, or GIF image.
var ErrUnsupportedFormat = errors.New("imagestore: unsupported image format")

// Store holds uploaded images in memory. It is safe for concurrent use by
// multiple goroutines.
//
// Images remain in memory until explicitly removed via Evict. Long-running
// processes accepting many uploads should evict entries once their mazes
// have been generated.
type Store struct {
	mu     sync.RWMutex
	images map[string][]byte
	names  map[string]string
}

// New creates an empty store ready for immediate use.
func New() *Store {
	return &Store{
		images: make(map[string][]byte),
		names:  make(map[string]string),
	}
}

// Put validates data as a supported raster image and stores it under a
// newly generated handle, which it returns. name is the original filename,
// kept as metadata; it may be empty.
//
// Returns an error wrapping ErrUnsupportedFormat if the bytes cannot be
// decoded as PNG, JPEG, or GIF.
func (s *Store) Put(name string, data []byte) (string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.images[id] = data
	s.names[id] = name
	s.mu.Unlock()

	return id, nil
}

// Exists reports whether a handle resolves to a stored image.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.images[id]
	return ok
}

// Fetch returns the stored bytes for a handle, or an error wrapping
// ErrNotFound. Callers must treat the returned slice as read-only.
func (s *Store) Fetch(id string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return data, nil
}

// Name returns the original filename recorded for a handle, or the empty
// string if the handle is unknown.
func (s *Store) Name(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names[id]
}

// Evict removes a stored image, freeing its memory. Unknown handles are
// ignored.
func (s *Store) Evict(id string) {
	s.mu.Lock()
	delete(s.images, id)
	delete(s.names, id)
	s.mu.Unlock()
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
