package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hobbygardens/garden-tracker/internal/middleware"
	"github.com/hobbygardens/garden-tracker/internal/services"
)

type LayoutHandler struct {
	layoutService *services.LayoutService
}

func NewLayoutHandler(layoutService *services.LayoutService) *LayoutHandler {
	return &LayoutHandler{layoutService: layoutService}
}

type SaveLayoutRequest struct {
	Layout map[string]interface{} `json:"layout" binding:"required"`
}

// GetLayout godoc
// @Summary Get the garden layout
// @Description Get the stored 2D layout document; layout is null when none has been saved
// @Tags layout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /layout [get]
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	view, err := h.layoutService.GetLayout(userID)
	if err != nil {
		log.Printf("Error loading layout for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve layout"})
		return
	}

	if view == nil {
		c.JSON(http.StatusOK, gin.H{"layout": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"layout": view})
}

// SaveLayout godoc
// @Summary Save the garden layout
// @Description Store the layout document; later saves merge top-level keys into the stored document
// @Tags layout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveLayoutRequest true "Layout document"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /layout [post]
func (h *LayoutHandler) SaveLayout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SaveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request must contain a 'layout' object"})
		return
	}

	view, err := h.layoutService.SaveLayout(userID, req.Layout)
	if err != nil {
		log.Printf("Error saving layout for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save layout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "layout": view})
}
