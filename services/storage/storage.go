package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// receiptFolder is the Cloudinary folder holding payment receipts.
const receiptFolder = "glamvan/receipts"

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService builds a StorageService from Cloudinary
// credentials.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadReceipt uploads a receipt image and returns its public ID.
func (s *CloudinaryStorageService) UploadReceipt(ctx context.Context, localFilePath string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: receiptFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for uploaded receipt")
	}
	return result.PublicID, nil
}

// DeleteReceipt removes a stored receipt by its public ID.
func (s *CloudinaryStorageService) DeleteReceipt(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", publicID, err)
	}
	return nil
}

// ReceiptURL returns a public URL for a stored receipt image.
func (s *CloudinaryStorageService) ReceiptURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve receipt asset %s: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build receipt URL: %w", err)
	}
	return url, nil
}
