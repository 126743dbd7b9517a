package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lifecycleHandler handles numbering, approval and signature commands on outgoing letters.
type lifecycleHandler struct {
	lifecycleService portssvc.LifecycleSvcFacade
	numberingService portssvc.NumberingSvcFacade
}

// RegisterLifecycleRoutes registers the outgoing letter lifecycle routes on rg.
func RegisterLifecycleRoutes(rg *gin.RouterGroup, lifecycleService portssvc.LifecycleSvcFacade, numberingService portssvc.NumberingSvcFacade) {
	h := &lifecycleHandler{lifecycleService: lifecycleService, numberingService: numberingService}

	letter := rg.Group("/letters/:letterID")
	{
		letter.POST("/number", h.generateNumber)
		letter.POST("/submit", h.submitForApproval)
		letter.POST("/approvals/:stepID", h.decideStep)
		letter.POST("/signature", h.attachSignature)
	}
}

// generateNumber godoc
// @Summary Generate the letter number
// @Description Reserves the next ordinal for the letter's primary issue and year and renders the configured template
// @Tags lifecycle
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   request body dto.GenerateNumberRequest false "Set regenerate to replace an existing number"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Missing primary issue or classification"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the creator"
// @Failure 404 {object} map[string]string "Letter, unit or classification not found"
// @Failure 409 {object} map[string]string "Letter already numbered or not editable"
// @Failure 500 {object} map[string]string "Failed to generate number"
// @Security BearerAuth
// @Router /letters/{letterID}/number [post]
func (h *lifecycleHandler) generateNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateNumberRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for GenerateNumber", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.numberingService.GenerateLetterNumber(c.Request.Context(), c.Param("letterID"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate number")
		return
	}
	logger.Info("Letter number generated", slog.String("letter_id", letter.LetterID), slog.String("letter_number", *letter.LetterNumber))
	c.JSON(http.StatusOK, viewResponse(letter, actorID))
}

// submitForApproval godoc
// @Summary Submit a letter for approval
// @Description Moves a Draf or Revisi letter to Menunggu Persetujuan with a fresh approval chain
// @Tags lifecycle
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Letter has no approvers"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the creator"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 409 {object} map[string]string "Letter cannot be submitted in its current state"
// @Failure 500 {object} map[string]string "Failed to submit letter"
// @Security BearerAuth
// @Router /letters/{letterID}/submit [post]
func (h *lifecycleHandler) submitForApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.lifecycleService.SubmitForApproval(c.Request.Context(), c.Param("letterID"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit letter")
		return
	}
	c.JSON(http.StatusOK, viewResponse(letter, actorID))
}

// decideStep godoc
// @Summary Approve or reject an approval step
// @Description Only the approver of the current step may decide it. Rejections require notes.
// @Tags lifecycle
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   stepID path string true "Approval step ID"
// @Param   decision body dto.DecisionRequest true "Decision"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the current approver"
// @Failure 404 {object} map[string]string "Letter or step not found"
// @Failure 409 {object} map[string]string "Step already decided"
// @Failure 500 {object} map[string]string "Failed to record decision"
// @Security BearerAuth
// @Router /letters/{letterID}/approvals/{stepID} [post]
func (h *lifecycleHandler) decideStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DecideStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.lifecycleService.DecideStep(c.Request.Context(), c.Param("letterID"), c.Param("stepID"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record decision")
		return
	}
	c.JSON(http.StatusOK, viewResponse(letter, actorID))
}

// attachSignature godoc
// @Summary Sign an approved letter
// @Description Attaches the signature and marks the letter Terkirim
// @Tags lifecycle
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   signature body dto.SignatureRequest true "Signature artifact"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller may not sign"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 409 {object} map[string]string "Letter is not approved or already signed"
// @Failure 500 {object} map[string]string "Failed to sign letter"
// @Security BearerAuth
// @Router /letters/{letterID}/signature [post]
func (h *lifecycleHandler) attachSignature(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AttachSignature", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	signerID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.lifecycleService.AttachSignature(c.Request.Context(), c.Param("letterID"), req, signerID)
	if err != nil {
		respondError(c, logger, err, "Failed to sign letter")
		return
	}
	logger.Info("Letter signed", slog.String("letter_id", letter.LetterID))
	c.JSON(http.StatusOK, viewResponse(letter, signerID))
}
