package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hobbygardens/garden-tracker/internal/middleware"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/services"
)

type PlantingHandler struct {
	plantingService *services.PlantingService
}

func NewPlantingHandler(plantingService *services.PlantingService) *PlantingHandler {
	return &PlantingHandler{plantingService: plantingService}
}

type CreatePlantingRequest struct {
	PlantTypeID         uint   `json:"plant_type_id" binding:"required"`
	Year                int    `json:"year" binding:"required"`
	Season              string `json:"season" binding:"required"`
	DatePlanted         string `json:"date_planted"`
	ExpectedHarvestDate string `json:"expected_harvest_date"`
	Notes               string `json:"notes"`
	Quantity            string `json:"quantity"`
	IsCurrent           *bool  `json:"is_current"`
}

// UpdatePlantingRequest distinguishes an omitted date (keep) from an empty
// string (clear).
type UpdatePlantingRequest struct {
	PlantTypeID         *uint   `json:"plant_type_id"`
	Year                *int    `json:"year"`
	Season              *string `json:"season"`
	DatePlanted         *string `json:"date_planted"`
	ExpectedHarvestDate *string `json:"expected_harvest_date"`
	Notes               *string `json:"notes"`
	Quantity            *string `json:"quantity"`
	IsCurrent           *bool   `json:"is_current"`
}

type PlantingResponse struct {
	ID                  uint         `json:"id"`
	BedID               uint         `json:"garden_bed_id"`
	PlantTypeID         uint         `json:"plant_type_id"`
	PlantName           string       `json:"plant_name"`
	Year                int          `json:"year"`
	Season              string       `json:"season"`
	DatePlanted         *models.Date `json:"date_planted"`
	ExpectedHarvestDate *models.Date `json:"expected_harvest_date"`
	Notes               string       `json:"notes"`
	Quantity            string       `json:"quantity"`
	IsCurrent           bool         `json:"is_current"`
}

func toPlantingResponse(planting *models.Planting) PlantingResponse {
	return PlantingResponse{
		ID:                  planting.ID,
		BedID:               planting.BedID,
		PlantTypeID:         planting.PlantTypeID,
		PlantName:           planting.PlantType.CommonName,
		Year:                planting.Year,
		Season:              planting.Season,
		DatePlanted:         planting.DatePlanted,
		ExpectedHarvestDate: planting.ExpectedHarvestDate,
		Notes:               planting.Notes,
		Quantity:            planting.Quantity,
		IsCurrent:           planting.IsCurrent,
	}
}

// parseOptionalDate maps "" to nil so requests can leave a date unset.
func parseOptionalDate(c *gin.Context, field, value string) (*models.Date, bool) {
	if value == "" {
		return nil, true
	}
	date, err := models.ParseDate(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: field + " must be a YYYY-MM-DD date"})
		return nil, false
	}
	return &date, true
}

// ListPlantings godoc
// @Summary List plantings for a bed
// @Description List a bed's plantings, newest season first; ?active=true keeps only current ones
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Param active query bool false "Only current plantings"
// @Success 200 {array} PlantingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds/{id}/plantings [get]
func (h *PlantingHandler) ListPlantings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	activeOnly := c.Query("active") == "true"

	plantings, err := h.plantingService.ListForBed(userID, bedID, activeOnly)
	if err != nil {
		if errors.Is(err, services.ErrBedNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
			return
		}
		log.Printf("Error listing plantings for bed %d: %v", bedID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve plantings"})
		return
	}

	response := make([]PlantingResponse, len(plantings))
	for i := range plantings {
		response[i] = toPlantingResponse(&plantings[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreatePlanting godoc
// @Summary Record a planting
// @Description Record what was planted in a bed for a given year and season
// @Tags plantings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Param request body CreatePlantingRequest true "Planting record"
// @Success 201 {object} PlantingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds/{id}/plantings [post]
func (h *PlantingHandler) CreatePlanting(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreatePlantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	datePlanted, ok := parseOptionalDate(c, "date_planted", req.DatePlanted)
	if !ok {
		return
	}
	harvestDate, ok := parseOptionalDate(c, "expected_harvest_date", req.ExpectedHarvestDate)
	if !ok {
		return
	}

	planting, err := h.plantingService.Create(userID, bedID, services.PlantingInput{
		PlantTypeID:         req.PlantTypeID,
		Year:                req.Year,
		Season:              req.Season,
		DatePlanted:         datePlanted,
		ExpectedHarvestDate: harvestDate,
		Notes:               req.Notes,
		Quantity:            req.Quantity,
		IsCurrent:           req.IsCurrent,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBedNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
		case errors.Is(err, services.ErrPlantTypeNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "plant type not found"})
		default:
			log.Printf("Error creating planting in bed %d: %v", bedID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record planting"})
		}
		return
	}

	c.JSON(http.StatusCreated, toPlantingResponse(planting))
}

// UpdatePlanting godoc
// @Summary Update a planting
// @Description Apply a partial update; an empty date string clears the stored date
// @Tags plantings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Planting ID"
// @Param request body UpdatePlantingRequest true "Fields to update"
// @Success 200 {object} PlantingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantings/{id} [put]
func (h *PlantingHandler) UpdatePlanting(c *gin.Context) {
	userID := middleware.GetUserID(c)
	plantingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePlantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	update := services.PlantingUpdate{
		PlantTypeID: req.PlantTypeID,
		Year:        req.Year,
		Season:      req.Season,
		Notes:       req.Notes,
		Quantity:    req.Quantity,
		IsCurrent:   req.IsCurrent,
	}
	if req.DatePlanted != nil {
		if *req.DatePlanted == "" {
			update.ClearDatePlanted = true
		} else {
			date, ok := parseOptionalDate(c, "date_planted", *req.DatePlanted)
			if !ok {
				return
			}
			update.DatePlanted = date
		}
	}
	if req.ExpectedHarvestDate != nil {
		if *req.ExpectedHarvestDate == "" {
			update.ClearHarvestDate = true
		} else {
			date, ok := parseOptionalDate(c, "expected_harvest_date", *req.ExpectedHarvestDate)
			if !ok {
				return
			}
			update.ExpectedHarvestDate = date
		}
	}

	planting, err := h.plantingService.Update(userID, plantingID, update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlantingNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "planting record not found"})
		case errors.Is(err, services.ErrNotPlantingOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
		case errors.Is(err, services.ErrPlantTypeNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "plant type not found"})
		default:
			log.Printf("Error updating planting %d: %v", plantingID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update planting"})
		}
		return
	}

	c.JSON(http.StatusOK, toPlantingResponse(planting))
}

// DeletePlanting godoc
// @Summary Delete a planting
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Planting ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantings/{id} [delete]
func (h *PlantingHandler) DeletePlanting(c *gin.Context) {
	userID := middleware.GetUserID(c)
	plantingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.plantingService.Delete(userID, plantingID); err != nil {
		switch {
		case errors.Is(err, services.ErrPlantingNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "planting record not found"})
		case errors.Is(err, services.ErrNotPlantingOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
		default:
			log.Printf("Error deleting planting %d: %v", plantingID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete planting"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planting deleted successfully"})
}
