package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultImageFolder   = "comfyinn"
	DefaultMaxImageBytes = 5 << 20
)

var (
	ErrInvalidImage  = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds the upload size limit")
)

// ImageStore keeps uploaded images and hands back the public URL to store in a record.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader, folder, ext string) (string, error)
	// Delete removes the image behind url. URLs the store does not own are ignored.
	Delete(ctx context.Context, url string) error
}

type ImageService struct {
	Store    ImageStore
	MaxBytes int64
}

func NewImageService(store ImageStore, maxBytes int64) *ImageService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &ImageService{Store: store, MaxBytes: maxBytes}
}

// Upload validates a multipart file and forwards it to the store.
func (s *ImageService) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	if fh.Size > s.MaxBytes {
		return "", ErrImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return s.upload(ctx, f, fh.Size, folder)
}

// UploadBase64 accepts a base64 payload, with or without a data-URL prefix.
func (s *ImageService) UploadBase64(ctx context.Context, b64, folder string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}
	if int64(base64.StdEncoding.DecodedLen(len(b64))) > s.MaxBytes+2 {
		return "", ErrImageTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrInvalidImage, err)
	}
	return s.upload(ctx, bytes.NewReader(data), int64(len(data)), folder)
}

func (s *ImageService) upload(ctx context.Context, r io.ReadSeeker, size int64, folder string) (string, error) {
	if size > s.MaxBytes {
		return "", ErrImageTooLarge
	}

	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrInvalidImage
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	url, err := s.Store.Upload(ctx, io.LimitReader(r, s.MaxBytes), SanitizeFolder(folder), mt.Extension())
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return url, nil
}

var folderChars = regexp.MustCompile(`[^A-Za-z0-9_\-/]+`)

// SanitizeFolder keeps folder names to letters, digits, '_', '-' and '/' and
// falls back to the default folder.
func SanitizeFolder(folder string) string {
	folder = folderChars.ReplaceAllString(folder, "")
	parts := strings.Split(folder, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return DefaultImageFolder
	}
	return strings.Join(kept, "/")
}

// staleImage returns the old image URL when an update replaced or cleared it.
func staleImage(before, after *string) *string {
	if before == nil || *before == "" {
		return nil
	}
	if after != nil && *after == *before {
		return nil
	}
	return before
}

// discardImage removes an image once no record points to it any more. It must run
// after the change that dropped the reference has been committed. Failures are
// logged only, and an image whose references cannot be counted is kept.
func discardImage(ctx context.Context, db *gorm.DB, store ImageStore, url *string) {
	if store == nil || url == nil || *url == "" {
		return
	}
	inUse, err := imageInUse(ctx, db, *url)
	if err != nil {
		zap.L().Warn("keeping image, reference check failed", zap.String("url", *url), zap.Error(err))
		return
	}
	if inUse {
		return
	}
	if err := store.Delete(ctx, *url); err != nil {
		zap.L().Warn("failed to delete image", zap.String("url", *url), zap.Error(err))
	}
}
