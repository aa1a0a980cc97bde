package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadsRoute is where the router serves the local upload directory.
const UploadsRoute = "/uploads"

// LocalImageStore writes images below Dir and serves them from BaseURL + /uploads.
type LocalImageStore struct {
	Dir     string
	BaseURL string
}

func NewLocalImageStore(dir, baseURL string) *LocalImageStore {
	return &LocalImageStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalImageStore) Upload(ctx context.Context, r io.Reader, folder, ext string) (string, error) {
	dir := filepath.Join(s.Dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	fullpath := filepath.Join(dir, filename)
	f, err := os.OpenFile(fullpath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}

	return s.BaseURL + UploadsRoute + "/" + folder + "/" + filename, nil
}

func (s *LocalImageStore) Delete(ctx context.Context, rawURL string) error {
	path, ok := s.PathFromURL(rawURL)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// PathFromURL maps a URL handed out by Upload back to its file. Only the path is
// compared, so files stay reachable after PUBLIC_BASE_URL changes host or scheme.
// URLs outside the upload route report false.
func (s *LocalImageStore) PathFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	prefix := s.basePath() + UploadsRoute + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(u.Path, prefix)))
	if rel == "." || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.Join(s.Dir, rel), true
}

// basePath is the path part of BaseURL, without a trailing slash.
func (s *LocalImageStore) basePath() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}
