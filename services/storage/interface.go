package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for attachment storage operations.
type StorageService interface {
	// UploadFile uploads a file and returns its permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a URL for downloading a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
