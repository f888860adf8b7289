// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListServices           gin.HandlerFunc
	ListServicesByCategory gin.HandlerFunc
	ListStylists           gin.HandlerFunc

	// Booking wizard endpoints.
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	UpdateSession  gin.HandlerFunc
	AdvanceSession gin.HandlerFunc
	RetreatSession gin.HandlerFunc
	CancelSession  gin.HandlerFunc
	UploadReceipt  gin.HandlerFunc

	// Post-completion endpoints.
	RateExperience gin.HandlerFunc
	GetLoyalty     gin.HandlerFunc

	// Admin endpoints.
	AdminLogin      gin.HandlerFunc
	AdminHandler    *AdminHandler
	ResourceHandler *ResourceHandler
}
