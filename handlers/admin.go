// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"glamvan/config"
	bookingRepo "glamvan/database/repository/booking"
	"glamvan/models"
	"glamvan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL is how long an admin login token stays valid.
const adminTokenTTL = 12 * time.Hour

// AdminHandler encapsulates elevated admin-level operations over bookings.
type AdminHandler struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings bookingRepo.BookingRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Logger: logger}
}

// LoginHandler handles POST /api/admin/login, checking the configured
// admin credentials and issuing a JWT.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if input.Email != config.AppConfig.AdminEmail || hash == "" ||
		bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		ah.Logger.Warn("admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(input.Email, "admin", adminTokenTTL)
	if err != nil {
		ah.Logger.Error("admin login: failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	if err := utils.CacheAdminToken(c.Request.Context(), token, adminTokenTTL); err != nil {
		ah.Logger.Error("admin login: failed to register token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// LogoutHandler handles POST /api/admin/logout, revoking the presented
// token so it can no longer pass the admin middleware.
func (ah *AdminHandler) LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}
	if err := utils.RevokeAdminToken(c.Request.Context(), token); err != nil {
		ah.Logger.Error("admin logout: failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GetAllBookingsHandler returns all bookings, newest first.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.Bookings.GetAll(c.Request.Context())
	if err != nil {
		ah.Logger.Error("Failed to fetch all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns a single booking by ID.
func (ah *AdminHandler) GetBookingHandler(c *gin.Context) {
	b, err := ah.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler moves a booking through its lifecycle,
// rejecting transitions the lifecycle does not allow.
func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	b, err := ah.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		ah.bookingError(c, err)
		return
	}
	if !models.CanTransition(b.Status, input.Status) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "invalid status transition",
			"from":  b.Status,
			"to":    input.Status,
		})
		return
	}
	if err := ah.Bookings.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		ah.bookingError(c, err)
		return
	}
	ah.Logger.Info("booking status updated",
		zap.String("id", id),
		zap.String("from", b.Status),
		zap.String("to", input.Status))
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// UpdatePaymentStatusHandler updates a booking's payment status.
func (ah *AdminHandler) UpdatePaymentStatusHandler(c *gin.Context) {
	var input struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Bookings.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), input.PaymentStatus); err != nil {
		ah.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentStatus": input.PaymentStatus})
}

// ReassignBookingHandler manually assigns a van and/or stylist to a
// booking. A booking in the unassigned pre-state moves to pending once it
// receives a van.
func (ah *AdminHandler) ReassignBookingHandler(c *gin.Context) {
	var input struct {
		Van     string `json:"van"`
		Stylist string `json:"stylist"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Van == "" && input.Stylist == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to reassign"})
		return
	}

	id := c.Param("id")
	b, err := ah.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		ah.bookingError(c, err)
		return
	}
	if err := ah.Bookings.Reassign(c.Request.Context(), id, input.Van, input.Stylist); err != nil {
		ah.bookingError(c, err)
		return
	}
	if b.Status == models.BookingUnassigned && input.Van != "" {
		if err := ah.Bookings.UpdateStatus(c.Request.Context(), id, models.BookingPending); err != nil {
			ah.bookingError(c, err)
			return
		}
	}
	ah.Logger.Info("booking reassigned",
		zap.String("id", id),
		zap.String("van", input.Van),
		zap.String("stylist", input.Stylist))
	c.JSON(http.StatusOK, gin.H{"status": "reassigned"})
}

func (ah *AdminHandler) bookingError(c *gin.Context, err error) {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	ah.Logger.Error("admin booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
}
