package storage

import "context"

// StorageService stores payment receipt images and serves their URLs.
type StorageService interface {
	// UploadReceipt uploads a receipt image and returns its permanent
	// reference (public ID).
	UploadReceipt(ctx context.Context, localFilePath string) (string, error)
	// DeleteReceipt removes a stored receipt by its reference.
	DeleteReceipt(ctx context.Context, publicID string) error
	// ReceiptURL returns a public URL for a stored receipt.
	ReceiptURL(ctx context.Context, publicID string) (string, error)
}
