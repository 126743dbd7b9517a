package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// letterHandler handles HTTP requests for creating, reading and filing letters.
type letterHandler struct {
	letterService portssvc.LetterSvcFacade
}

// newLetterHandler creates a new letterHandler.
func newLetterHandler(ls portssvc.LetterSvcFacade) *letterHandler {
	return &letterHandler{letterService: ls}
}

// RegisterLetterRoutes registers the letter routes on rg.
func RegisterLetterRoutes(rg *gin.RouterGroup, letterService portssvc.LetterSvcFacade) {
	h := newLetterHandler(letterService)

	letters := rg.Group("/letters")
	{
		letters.POST("/outgoing", h.createOutgoingLetter)
		letters.POST("/incoming", h.createIncomingLetter)
		letters.POST("/memos", h.createInternalMemo)
		letters.GET("", h.listLetters)
		letters.GET("/search", h.searchLetters)
		letters.GET("/:letterID", h.getLetter)
		letters.PUT("/:letterID/draft", h.updateOutgoingDraft)
		letters.POST("/:letterID/send", h.sendMemo)
		letters.POST("/:letterID/comments", h.addComment)
		letters.POST("/:letterID/archive", h.archiveLetter)
	}
}

// createOutgoingLetter godoc
// @Summary Draft an outgoing letter
// @Description Creates an outgoing letter in Draf at version 1 with the given approver order
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   letter body dto.CreateOutgoingLetterRequest true "Letter details"
// @Success 201 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Approver or reply target not found"
// @Failure 500 {object} map[string]string "Failed to create letter"
// @Security BearerAuth
// @Router /letters/outgoing [post]
func (h *letterHandler) createOutgoingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOutgoingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOutgoingLetter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.letterService.CreateOutgoingLetter(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create letter")
		return
	}

	logger.Info("Outgoing letter drafted", slog.String("letter_id", letter.LetterID))
	c.JSON(http.StatusCreated, viewResponse(letter, creatorID))
}

// createIncomingLetter godoc
// @Summary Register an incoming letter
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   letter body dto.CreateIncomingLetterRequest true "Intake details"
// @Success 201 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to register letter"
// @Security BearerAuth
// @Router /letters/incoming [post]
func (h *letterHandler) createIncomingLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomingLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncomingLetter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	registrarID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.letterService.CreateIncomingLetter(c.Request.Context(), req, registrarID)
	if err != nil {
		respondError(c, logger, err, "Failed to register letter")
		return
	}

	logger.Info("Incoming letter registered", slog.String("letter_id", letter.LetterID))
	c.JSON(http.StatusCreated, viewResponse(letter, registrarID))
}

// createInternalMemo godoc
// @Summary Draft an internal memo
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   memo body dto.CreateMemoRequest true "Memo details"
// @Success 201 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create memo"
// @Security BearerAuth
// @Router /letters/memos [post]
func (h *letterHandler) createInternalMemo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInternalMemo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	memo, err := h.letterService.CreateInternalMemo(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create memo")
		return
	}

	c.JSON(http.StatusCreated, viewResponse(memo, creatorID))
}

// getLetter godoc
// @Summary Get a letter by ID
// @Description Returns the letter with its current approver, chain completion and routing targets
// @Tags letters
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 500 {object} map[string]string "Failed to retrieve letter"
// @Security BearerAuth
// @Router /letters/{letterID} [get]
func (h *letterHandler) getLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewerID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}
	letterID := c.Param("letterID")

	view, err := h.letterService.GetLetterView(c.Request.Context(), letterID, viewerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve letter")
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterViewResponse(*view))
}

// listLetters godoc
// @Summary List letters
// @Description Lists letters newest first using token-based pagination
// @Tags letters
// @Produce  json
// @Param   kind query string false "SURAT_MASUK, SURAT_KELUAR or NOTA_DINAS"
// @Param   status query string false "Lifecycle status"
// @Param   archived query bool false "Archived filter"
// @Param   mine query bool false "Only letters created by the caller"
// @Param   limit query int false "Number of letters to return (default 20)"
// @Param   nextToken query string false "Token for fetching the next page"
// @Success 200 {object} dto.ListLettersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list letters"
// @Security BearerAuth
// @Router /letters [get]
func (h *letterHandler) listLetters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLettersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListLetters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	viewerID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	resp, err := h.letterService.ListLetters(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list letters")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// searchLetters godoc
// @Summary Search the archive
// @Description Free text search over subject, number, sender, recipient and summary
// @Tags letters
// @Produce  json
// @Param   q query string true "Search text"
// @Param   limit query int false "Maximum number of hits (default 20)"
// @Success 200 {object} dto.ListLettersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to search letters"
// @Security BearerAuth
// @Router /letters/search [get]
func (h *letterHandler) searchLetters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchLettersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for SearchLetters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	viewerID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letters, err := h.letterService.SearchLetters(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to search letters")
		return
	}
	c.JSON(http.StatusOK, dto.ListLettersResponse{Letters: dto.ToLetterViewResponses(letters, viewerID)})
}

// updateOutgoingDraft godoc
// @Summary Edit an outgoing draft
// @Description Only the creator may edit, and only while the letter is in Draf or Revisi
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   changes body dto.UpdateOutgoingDraftRequest true "Fields to change"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the creator"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 409 {object} map[string]string "Letter is not editable"
// @Failure 500 {object} map[string]string "Failed to update letter"
// @Security BearerAuth
// @Router /letters/{letterID}/draft [put]
func (h *letterHandler) updateOutgoingDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateOutgoingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOutgoingDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	editorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.letterService.UpdateOutgoingDraft(c.Request.Context(), c.Param("letterID"), req, editorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update letter")
		return
	}
	c.JSON(http.StatusOK, viewResponse(letter, editorID))
}

// sendMemo godoc
// @Summary Send an internal memo
// @Tags letters
// @Produce  json
// @Param   letterID path string true "Memo ID"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Memo has no recipients"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the creator"
// @Failure 404 {object} map[string]string "Memo not found"
// @Failure 409 {object} map[string]string "Memo already sent"
// @Failure 500 {object} map[string]string "Failed to send memo"
// @Security BearerAuth
// @Router /letters/{letterID}/send [post]
func (h *letterHandler) sendMemo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	memo, err := h.letterService.SendMemo(c.Request.Context(), c.Param("letterID"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to send memo")
		return
	}
	c.JSON(http.StatusOK, viewResponse(memo, actorID))
}

// addComment godoc
// @Summary Comment on a letter
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   comment body dto.AddCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 409 {object} map[string]string "Letter is archived"
// @Failure 500 {object} map[string]string "Failed to add comment"
// @Security BearerAuth
// @Router /letters/{letterID}/comments [post]
func (h *letterHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddComment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	authorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	comment, err := h.letterService.AddComment(c.Request.Context(), c.Param("letterID"), req, authorID)
	if err != nil {
		respondError(c, logger, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// archiveLetter godoc
// @Summary Archive a letter
// @Tags letters
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID"
// @Param   archive body dto.ArchiveLetterRequest true "Target folder"
// @Success 200 {object} dto.LetterViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Letter not found"
// @Failure 409 {object} map[string]string "Letter already archived"
// @Failure 500 {object} map[string]string "Failed to archive letter"
// @Security BearerAuth
// @Router /letters/{letterID}/archive [post]
func (h *letterHandler) archiveLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ArchiveLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ArchiveLetter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	letter, err := h.letterService.ArchiveLetter(c.Request.Context(), c.Param("letterID"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to archive letter")
		return
	}
	logger.Info("Letter archived", slog.String("letter_id", letter.Base().LetterID), slog.String("folder_id", req.FolderID))
	c.JSON(http.StatusOK, viewResponse(letter, actorID))
}
