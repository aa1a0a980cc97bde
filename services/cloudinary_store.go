package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploaded images are cropped to fill 800x600 with automatic quality.
const cloudinaryTransformation = "c_fill,w_800,h_600,q_auto"

// CloudinaryImageStore keeps images on Cloudinary.
type CloudinaryImageStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinaryImageStore(cloudName, apiKey, apiSecret string) (*CloudinaryImageStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryImageStore{cld: cld, cloudName: cloudName}, nil
}

func (s *CloudinaryImageStore) Upload(ctx context.Context, r io.Reader, folder, ext string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		Transformation: cloudinaryTransformation,
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

func (s *CloudinaryImageStore) Delete(ctx context.Context, rawURL string) error {
	publicID := PublicIDFromURL(s.cloudName, rawURL)
	if publicID == "" {
		return nil
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}

// cloudinaryHost serves every account's delivery URLs.
const cloudinaryHost = "res.cloudinary.com"

var publicIDPattern = regexp.MustCompile(`/v\d+/(.+)\.\w+$`)

// PublicIDFromURL extracts "folder/name" from a versioned delivery URL of the
// cloudName account. Any other URL yields "", so foreign images are never destroyed.
func PublicIDFromURL(cloudName, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || cloudName == "" || !strings.EqualFold(u.Host, cloudinaryHost) {
		return ""
	}
	if !strings.HasPrefix(u.Path, "/"+cloudName+"/") {
		return ""
	}
	m := publicIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return ""
	}
	return m[1]
}
