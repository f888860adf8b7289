// File: handlers/resources.go
package handlers

import (
	"errors"
	"net/http"

	promotionRepo "glamvan/database/repository/promotion"
	stylistRepo "glamvan/database/repository/stylist"
	vanRepo "glamvan/database/repository/van"
	"glamvan/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceHandler covers the admin CRUD surface for stylists, vans, and
// promotions.
type ResourceHandler struct {
	Stylists   stylistRepo.StylistRepository
	Vans       vanRepo.VanRepository
	Promotions promotionRepo.PromotionRepository
	Logger     *zap.Logger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(stylists stylistRepo.StylistRepository, vans vanRepo.VanRepository, promotions promotionRepo.PromotionRepository, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{Stylists: stylists, Vans: vans, Promotions: promotions, Logger: logger}
}

// --- Stylists ---

func (rh *ResourceHandler) CreateStylistHandler(c *gin.Context) {
	var s models.Stylist
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = models.StylistAvailable
	}
	if err := rh.Stylists.Create(c.Request.Context(), &s); err != nil {
		rh.internal(c, "failed to create stylist", err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (rh *ResourceHandler) UpdateStylistHandler(c *gin.Context) {
	var s models.Stylist
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	s.ID = c.Param("id")
	if err := rh.Stylists.Update(c.Request.Context(), &s); err != nil {
		rh.notFoundOrInternal(c, err, stylistRepo.ErrStylistNotFound, "stylist not found", "failed to update stylist")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rh *ResourceHandler) DeleteStylistHandler(c *gin.Context) {
	if err := rh.Stylists.Delete(c.Request.Context(), c.Param("id")); err != nil {
		rh.notFoundOrInternal(c, err, stylistRepo.ErrStylistNotFound, "stylist not found", "failed to delete stylist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Vans ---

func (rh *ResourceHandler) GetAllVansHandler(c *gin.Context) {
	vans, err := rh.Vans.ListVans(c.Request.Context())
	if err != nil {
		rh.internal(c, "failed to fetch vans", err)
		return
	}
	c.JSON(http.StatusOK, vans)
}

func (rh *ResourceHandler) CreateVanHandler(c *gin.Context) {
	var v models.Van
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.Status == "" {
		v.Status = models.VanAvailable
	}
	if err := rh.Vans.Create(c.Request.Context(), &v); err != nil {
		rh.internal(c, "failed to create van", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (rh *ResourceHandler) UpdateVanHandler(c *gin.Context) {
	var v models.Van
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	v.ID = c.Param("id")
	if err := rh.Vans.Update(c.Request.Context(), &v); err != nil {
		rh.notFoundOrInternal(c, err, vanRepo.ErrVanNotFound, "van not found", "failed to update van")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rh *ResourceHandler) DeleteVanHandler(c *gin.Context) {
	if err := rh.Vans.Delete(c.Request.Context(), c.Param("id")); err != nil {
		rh.notFoundOrInternal(c, err, vanRepo.ErrVanNotFound, "van not found", "failed to delete van")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Promotions ---

func (rh *ResourceHandler) GetAllPromotionsHandler(c *gin.Context) {
	promos, err := rh.Promotions.ListPromotions(c.Request.Context())
	if err != nil {
		rh.internal(c, "failed to fetch promotions", err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

func (rh *ResourceHandler) CreatePromotionHandler(c *gin.Context) {
	var p models.Promotion
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if err := rh.Promotions.Create(c.Request.Context(), &p); err != nil {
		rh.internal(c, "failed to create promotion", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (rh *ResourceHandler) UpdatePromotionHandler(c *gin.Context) {
	var p models.Promotion
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := rh.Promotions.Update(c.Request.Context(), &p); err != nil {
		rh.notFoundOrInternal(c, err, promotionRepo.ErrPromotionNotFound, "promotion not found", "failed to update promotion")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rh *ResourceHandler) DeletePromotionHandler(c *gin.Context) {
	if err := rh.Promotions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		rh.notFoundOrInternal(c, err, promotionRepo.ErrPromotionNotFound, "promotion not found", "failed to delete promotion")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (rh *ResourceHandler) internal(c *gin.Context, msg string, err error) {
	rh.Logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func (rh *ResourceHandler) notFoundOrInternal(c *gin.Context, err, sentinel error, notFoundMsg, internalMsg string) {
	if errors.Is(err, sentinel) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	rh.internal(c, internalMsg, err)
}
