package services

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// memStore keeps uploads in memory and records deletions.
type memStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (s *memStore) Upload(ctx context.Context, r io.Reader, folder, ext string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	url := fmt.Sprintf("https://img.test/%s/%d%s", folder, len(s.files)+1, ext)
	s.files[url] = data
	return url, nil
}

func (s *memStore) Delete(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, url)
	s.deleted = append(s.deleted, url)
	return nil
}

func (s *memStore) Deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}
