package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type disposisiHandler struct {
	disposisiService portssvc.DisposisiSvcFacade
}

// RegisterDisposisiRoutes registers the routing routes of incoming letters on rg.
func RegisterDisposisiRoutes(rg *gin.RouterGroup, disposisiService portssvc.DisposisiSvcFacade) {
	h := &disposisiHandler{disposisiService: disposisiService}

	routing := rg.Group("/letters/:letterID/routing")
	{
		routing.POST("", h.addRouting)
		routing.PUT("/:entryID/status", h.setRoutingStatus)
	}
}

// addRouting godoc
// @Summary Route an incoming letter
// @Description Creates a Diproses disposisi entry. Set parentEntryID to forward an entry addressed to the caller.
// @Tags disposisi
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Incoming letter ID"
// @Param   routing body dto.AddRoutingRequest true "Routing entry"
// @Success 201 {object} domain.RoutingEntry
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller may not forward the parent entry"
// @Failure 404 {object} map[string]string "Letter, target or parent entry not found"
// @Failure 409 {object} map[string]string "Letter is archived or not an incoming letter"
// @Failure 500 {object} map[string]string "Failed to add routing"
// @Security BearerAuth
// @Router /letters/{letterID}/routing [post]
func (h *disposisiHandler) addRouting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddRoutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddRouting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	entry, err := h.disposisiService.AddRouting(c.Request.Context(), c.Param("letterID"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to add routing")
		return
	}
	logger.Info("Routing entry added", slog.String("entry_id", entry.EntryID), slog.String("target_user_id", entry.Target.UserID))
	c.JSON(http.StatusCreated, entry)
}

// setRoutingStatus godoc
// @Summary Close a disposisi entry
// @Description Only the addressed user may mark an entry Selesai or Ditolak
// @Tags disposisi
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Incoming letter ID"
// @Param   entryID path string true "Routing entry ID"
// @Param   status body dto.SetRoutingStatusRequest true "New status"
// @Success 200 {object} domain.RoutingEntry
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the entry's target"
// @Failure 404 {object} map[string]string "Letter or entry not found"
// @Failure 409 {object} map[string]string "Entry already closed"
// @Failure 500 {object} map[string]string "Failed to update routing"
// @Security BearerAuth
// @Router /letters/{letterID}/routing/{entryID}/status [put]
func (h *disposisiHandler) setRoutingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetRoutingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetRoutingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	entry, err := h.disposisiService.SetRoutingStatus(c.Request.Context(), c.Param("letterID"), c.Param("entryID"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update routing")
		return
	}
	c.JSON(http.StatusOK, entry)
}
