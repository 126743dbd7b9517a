package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler serves the user and unit directory.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

// RegisterDirectoryRoutes registers the read-only directory routes on rg.
func RegisterDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := &directoryHandler{directoryService: directoryService}

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
	}
	rg.GET("/units/:unitID", h.getUnit)
}

// listUsers godoc
// @Summary List users
// @Description Lists directory users ordered by name, for approver and routing pickers
// @Tags directory
// @Produce  json
// @Param   limit query int false "Limit (default 20)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *directoryHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListUsers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.directoryService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags directory
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *directoryHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, err := h.directoryService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// getUnit godoc
// @Summary Get a unit by ID
// @Description Returns the unit with the full code used in letter numbers
// @Tags directory
// @Produce  json
// @Param   unitID path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Failed to retrieve unit"
// @Security BearerAuth
// @Router /units/{unitID} [get]
func (h *directoryHandler) getUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	unit, err := h.directoryService.GetUnit(c.Request.Context(), c.Param("unitID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}
