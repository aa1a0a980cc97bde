package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestUploadBase64(t *testing.T) {
	store := newMemStore()
	svc := NewImageService(store, 1024)

	url, err := svc.UploadBase64(context.Background(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), "rooms")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://img.test/rooms/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Equal(t, pngHeader, store.files[url])
}

func TestUploadRejectsNonImages(t *testing.T) {
	svc := NewImageService(newMemStore(), 1024)

	_, err := svc.UploadBase64(context.Background(), base64.StdEncoding.EncodeToString([]byte("just some text")), "")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.UploadBase64(context.Background(), "%%%not-base64", "")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestUploadRejectsLargeImages(t *testing.T) {
	svc := NewImageService(newMemStore(), 16)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	_, err := svc.UploadBase64(context.Background(), base64.StdEncoding.EncodeToString(big), "")
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestSanitizeFolder(t *testing.T) {
	assert.Equal(t, "comfyinn", SanitizeFolder(""))
	assert.Equal(t, "comfyinn", SanitizeFolder("../.."))
	assert.Equal(t, "rooms/deluxe", SanitizeFolder("/rooms//deluxe/"))
	assert.Equal(t, "menu_items-1", SanitizeFolder("menu_items-1 !?."))
}

func TestLocalImageStore(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir, "http://localhost:8080/")
	ctx := context.Background()

	url, err := store.Upload(ctx, bytes.NewReader(pngHeader), "rooms", ".png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/rooms/"))

	path, ok := store.PathFromURL(url)
	require.True(t, ok)
	assert.Equal(t, dir, filepath.Dir(filepath.Dir(path)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Already gone and foreign URLs are both fine.
	assert.NoError(t, store.Delete(ctx, url))
	assert.NoError(t, store.Delete(ctx, "https://res.cloudinary.com/demo/image/upload/v1/x.jpg"))
}

func TestLocalImageStoreRefusesTraversal(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "")

	_, ok := store.PathFromURL("/uploads/../../etc/passwd")
	assert.False(t, ok)
	_, ok = store.PathFromURL("/elsewhere/a.png")
	assert.False(t, ok)
}

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/comfyinn/rooms/abc123.jpg", "comfyinn/rooms/abc123"},
		{"https://res.cloudinary.com/other/image/upload/v1712345678/comfyinn/rooms/abc123.jpg", ""},
		{"https://cdn.example.com/demo/image/upload/v1712345678/comfyinn/rooms/abc123.jpg", ""},
		{"https://res.cloudinary.com/demo/image/upload/comfyinn/rooms/abc123.jpg", ""},
		{"https://example.com/pic.jpg", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PublicIDFromURL("demo", tc.url), tc.url)
	}
	assert.Equal(t, "", PublicIDFromURL("", cases[0].url))
}

func TestLocalImageStoreIgnoresHostChanges(t *testing.T) {
	dir := t.TempDir()
	before := NewLocalImageStore(dir, "http://localhost:8080")
	after := NewLocalImageStore(dir, "https://comfyinn.example")

	url, err := before.Upload(context.Background(), bytes.NewReader(pngHeader), "rooms", ".png")
	require.NoError(t, err)

	oldPath, ok := before.PathFromURL(url)
	require.True(t, ok)
	newPath, ok := after.PathFromURL(url)
	require.True(t, ok)
	assert.Equal(t, oldPath, newPath)

	prefixed := NewLocalImageStore(dir, "https://comfyinn.example/api")
	_, ok = prefixed.PathFromURL(url)
	assert.False(t, ok)
}

func TestStaleImage(t *testing.T) {
	a, b := "a.jpg", "b.jpg"

	assert.Nil(t, staleImage(nil, &a))
	assert.Nil(t, staleImage(&a, &a))
	assert.Equal(t, &a, staleImage(&a, &b))
	assert.Equal(t, &a, staleImage(&a, nil))
}
