// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"glamvan/models"
	"glamvan/services/booking"
	"glamvan/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Sessions   booking.SessionService
	Experience booking.ExperienceService
	Storage    storage.StorageService
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessions booking.SessionService, experience booking.ExperienceService, store storage.StorageService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions:   sessions,
		Experience: experience,
		Storage:    store,
		Logger:     logger,
	}
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Preselected string `json:"preselected"`
	}
	// An empty body starts a blank session.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Sessions.StartSession(c.Request.Context(), input.Preselected)
	if err != nil {
		h.Logger.Error("StartSession: failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch booking.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateSession(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceSession handles POST /api/booking/session/:sessionID/advance.
// Advancing from the Payment step finalizes the booking.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Sessions.AdvanceSession(c.Request.Context(), sessionID)
	if err != nil {
		var submitErr *booking.SubmitError
		switch {
		case errors.Is(err, booking.ErrValidationBlocked):
			c.JSON(http.StatusConflict, gin.H{"error": "current step is not complete"})
		case errors.As(err, &submitErr):
			// The session is untouched; the client may retry the advance.
			h.Logger.Error("AdvanceSession: booking submission failed",
				zap.String("sessionId", sessionID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "booking submission failed, please retry"})
		default:
			h.sessionError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// RetreatSession handles POST /api/booking/session/:sessionID/retreat.
func (h *BookingHandler) RetreatSession(c *gin.Context) {
	session, err := h.Sessions.RetreatSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// UploadReceipt handles POST /api/booking/session/:sessionID/receipt. The
// uploaded image is stored and its reference attached to the draft's
// payment selection.
func (h *BookingHandler) UploadReceipt(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.Sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	if !session.Draft.Payment.RequiresReceipt() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selected payment method does not take a receipt"})
		return
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing receipt file", "details": err.Error()})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.Logger.Error("UploadReceipt: failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read receipt upload"})
		return
	}
	defer os.Remove(tmpPath)

	ref, err := h.Storage.UploadReceipt(c.Request.Context(), tmpPath)
	if err != nil {
		h.Logger.Error("UploadReceipt: storage upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store receipt"})
		return
	}

	payment := session.Draft.Payment
	payment.ReceiptRef = ref
	updated, err := h.Sessions.UpdateSession(c.Request.Context(), sessionID, booking.DraftPatch{Payment: &payment})
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RateExperience handles POST /api/booking/rate.
func (h *BookingHandler) RateExperience(c *gin.Context) {
	var rating models.Rating
	if err := c.ShouldBindJSON(&rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Experience.RateExperience(c.Request.Context(), rating); err != nil {
		h.Logger.Warn("RateExperience: failed to record rating",
			zap.String("code", rating.ConfirmationCode), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rated"})
}

// GetLoyalty handles GET /api/booking/loyalty/:email.
func (h *BookingHandler) GetLoyalty(c *gin.Context) {
	snap, err := h.Experience.LoyaltySnapshot(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Logger.Error("GetLoyalty: failed to build loyalty snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch loyalty status"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *BookingHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	h.Logger.Error("booking session operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "booking session operation failed"})
}
