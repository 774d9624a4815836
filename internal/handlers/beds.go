package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hobbygardens/garden-tracker/internal/middleware"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/services"
	"github.com/hobbygardens/garden-tracker/internal/shapes"
)

type BedHandler struct {
	bedService *services.BedService
}

func NewBedHandler(bedService *services.BedService) *BedHandler {
	return &BedHandler{bedService: bedService}
}

type CreateBedRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Shape       string                 `json:"shape" binding:"required"`
	ShapeParams map[string]interface{} `json:"shape_params" binding:"required"`
	UnitMeasure string                 `json:"unit_measure" binding:"required"`
	Notes       string                 `json:"notes"`
}

type UpdateBedRequest struct {
	Name        *string                `json:"name"`
	Shape       *string                `json:"shape"`
	ShapeParams map[string]interface{} `json:"shape_params"`
	UnitMeasure *string                `json:"unit_measure"`
	Notes       *string                `json:"notes"`
}

type BedResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Shape        string                 `json:"shape"`
	ShapeParams  map[string]interface{} `json:"shape_params"`
	UnitMeasure  string                 `json:"unit_measure"`
	Notes        string                 `json:"notes"`
	CreationDate string                 `json:"creation_date"`
	LastModified string                 `json:"last_modified"`
}

func toBedResponse(bed *models.GardenBed) BedResponse {
	return BedResponse{
		ID:           bed.ID,
		Name:         bed.Name,
		Shape:        bed.Shape,
		ShapeParams:  bed.ShapeParams,
		UnitMeasure:  bed.UnitMeasure,
		Notes:        bed.Notes,
		CreationDate: bed.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		LastModified: bed.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListBeds godoc
// @Summary List garden beds
// @Description List all garden beds owned by the authenticated user
// @Tags garden-beds
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BedResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds [get]
func (h *BedHandler) ListBeds(c *gin.Context) {
	userID := middleware.GetUserID(c)

	beds, err := h.bedService.ListBeds(userID)
	if err != nil {
		log.Printf("Error listing garden beds for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve garden beds"})
		return
	}

	response := make([]BedResponse, len(beds))
	for i := range beds {
		response[i] = toBedResponse(&beds[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreateBed godoc
// @Summary Create a garden bed
// @Description Create a garden bed after validating its shape definition
// @Tags garden-beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBedRequest true "Bed definition"
// @Success 201 {object} BedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds [post]
func (h *BedHandler) CreateBed(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	bed, err := h.bedService.CreateBed(userID, services.BedInput{
		Name:        req.Name,
		Shape:       req.Shape,
		ShapeParams: req.ShapeParams,
		UnitMeasure: req.UnitMeasure,
		Notes:       req.Notes,
	})
	if err != nil {
		if shapes.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error creating garden bed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create garden bed"})
		return
	}

	c.JSON(http.StatusCreated, toBedResponse(bed))
}

// GetBed godoc
// @Summary Get a garden bed
// @Tags garden-beds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Success 200 {object} BedResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /garden-beds/{id} [get]
func (h *BedHandler) GetBed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bed, err := h.bedService.GetBed(userID, bedID)
	if err != nil {
		if errors.Is(err, services.ErrBedNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve garden bed"})
		return
	}

	c.JSON(http.StatusOK, toBedResponse(bed))
}

// UpdateBed godoc
// @Summary Update a garden bed
// @Description Apply a partial update; the resulting shape definition is re-validated
// @Tags garden-beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Param request body UpdateBedRequest true "Fields to update"
// @Success 200 {object} BedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds/{id} [put]
func (h *BedHandler) UpdateBed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	bed, err := h.bedService.UpdateBed(userID, bedID, services.BedUpdate{
		Name:        req.Name,
		Shape:       req.Shape,
		ShapeParams: req.ShapeParams,
		UnitMeasure: req.UnitMeasure,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBedNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
		case shapes.IsValidationError(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("Error updating garden bed %d: %v", bedID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update garden bed"})
		}
		return
	}

	c.JSON(http.StatusOK, toBedResponse(bed))
}

// DeleteBed godoc
// @Summary Delete a garden bed
// @Description Delete a bed and its plantings
// @Tags garden-beds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds/{id} [delete]
func (h *BedHandler) DeleteBed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bedService.DeleteBed(userID, bedID); err != nil {
		if errors.Is(err, services.ErrBedNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
			return
		}
		log.Printf("Error deleting garden bed %d: %v", bedID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete garden bed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Garden bed deleted successfully"})
}
