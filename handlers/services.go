// File: handlers/services.go
package handlers

import (
	"net/http"
	"strings"

	catalogRepo "glamvan/database/repository/catalog"
	stylistRepo "glamvan/database/repository/stylist"
	"glamvan/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public service catalog and stylist roster.
type CatalogHandler struct {
	Catalog  catalogRepo.CatalogRepository
	Stylists stylistRepo.StylistRepository
	Logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, stylists stylistRepo.StylistRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Stylists: stylists, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListServicesByCategory handles GET /api/services/:category.
func (h *CatalogHandler) ListServicesByCategory(c *gin.Context) {
	category := strings.ToLower(c.Param("category"))
	services, err := h.Catalog.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.Logger.Error("ListServicesByCategory: failed to fetch catalog",
			zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListStylists handles GET /api/stylists. An optional "specialties" query
// (comma-separated) filters to available stylists matching any of the
// given specialty tags.
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.Stylists.ListStylists(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListStylists: failed to fetch stylists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stylists"})
		return
	}

	if q := c.Query("specialties"); q != "" {
		var specialties []string
		for _, s := range strings.Split(q, ",") {
			if s = strings.TrimSpace(strings.ToLower(s)); s != "" {
				specialties = append(specialties, s)
			}
		}
		wedding := false
		for _, s := range specialties {
			if s == "wedding" {
				wedding = true
			}
		}
		stylists = booking.MatchStylists(stylists, specialties, wedding)
	}
	c.JSON(http.StatusOK, stylists)
}
