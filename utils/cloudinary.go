package utils

import (
	"context"
	"fmt"

	"disruptive/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CoverStorage uploads category cover images to Cloudinary.
type CoverStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCoverStorage initializes the Cloudinary client from configuration.
func NewCoverStorage() (*CoverStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CoverStorage{cld: cld}, nil
}

// UploadCover uploads the file at localFilePath and returns its secure URL.
func (s *CoverStorage) UploadCover(ctx context.Context, localFilePath string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: "covers"})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for uploaded cover image")
	}
	return result.SecureURL, nil
}
