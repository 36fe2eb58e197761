package footprint

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/logger"
	"go.uber.org/zap"
)

// Handler handles footprint HTTP endpoints
type Handler struct {
	service *Service
}

// NewHandler creates a footprint handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers footprint endpoints on the router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	footprint := rg.Group("/footprint")
	{
		footprint.POST("/records", h.CreateRecord)
		footprint.GET("/records", h.ListRecords)
		footprint.GET("/summary", h.GetSummary)
		footprint.GET("/leaderboard", h.GetLeaderboard)
		footprint.GET("/badges", h.GetBadges)
		footprint.GET("/suggestions", h.GetSuggestions)
	}
}

// CreateRecord logs a new emission record
func (h *Handler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	record, err := h.service.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "failed to create emission record")
		return
	}

	common.CreatedResponse(c, record)
}

// ListRecords returns the requesting user's records
func (h *Handler) ListRecords(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.service.ListRecords(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to list emission records")
		return
	}

	common.SuccessResponse(c, gin.H{"records": records})
}

// GetSummary returns the user's aggregate footprint
func (h *Handler) GetSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to summarize footprint")
		return
	}

	common.SuccessResponse(c, summary)
}

// GetLeaderboard returns the top savers
func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.service.GetLeaderboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to build leaderboard")
		return
	}

	common.SuccessResponse(c, gin.H{"leaderboard": entries})
}

// GetBadges returns the user's earned badges
func (h *Handler) GetBadges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	badges, err := h.service.GetBadges(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to compute badges")
		return
	}

	common.SuccessResponse(c, gin.H{"badges": badges})
}

// GetSuggestions returns reduction tips for the user
func (h *Handler) GetSuggestions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.service.GetSuggestions(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to compute suggestions")
		return
	}

	common.SuccessResponse(c, gin.H{"suggestions": suggestions})
}

func (h *Handler) respondError(c *gin.Context, err error, msg string) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		common.AppErrorResponse(c, appErr)
		return
	}
	logger.ErrorContext(c.Request.Context(), msg, zap.Error(err))
	c.Error(err)
	common.ErrorResponse(c, http.StatusInternalServerError, msg)
}

func requireUserID(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "user_id query parameter is required")
		return "", false
	}
	return userID, true
}
