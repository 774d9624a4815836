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

type PlantHandler struct {
	plantService *services.PlantService
}

func NewPlantHandler(plantService *services.PlantService) *PlantHandler {
	return &PlantHandler{plantService: plantService}
}

type CreatePlantTypeRequest struct {
	CommonName     string   `json:"common_name" binding:"required"`
	ScientificName string   `json:"scientific_name" binding:"required"`
	Description    string   `json:"description"`
	AvgHeight      *float64 `json:"avg_height"`
	AvgSpread      *float64 `json:"avg_spread"`
	RotationFamily string   `json:"rotation_family"`
	Notes          string   `json:"notes"`
}

type PlantTypeResponse struct {
	ID             uint     `json:"id"`
	CommonName     string   `json:"common_name"`
	ScientificName string   `json:"scientific_name"`
	Description    string   `json:"description"`
	AvgHeight      *float64 `json:"avg_height"`
	AvgSpread      *float64 `json:"avg_spread"`
	RotationFamily string   `json:"rotation_family"`
	Notes          string   `json:"notes"`
}

type RecommendationsResponse struct {
	LastPlantedFamily string              `json:"last_planted_family"`
	Recommendations   []PlantTypeResponse `json:"recommendations"`
}

func toPlantTypeResponse(plant *models.PlantType) PlantTypeResponse {
	return PlantTypeResponse{
		ID:             plant.ID,
		CommonName:     plant.CommonName,
		ScientificName: plant.ScientificName,
		Description:    plant.Description,
		AvgHeight:      plant.AvgHeight,
		AvgSpread:      plant.AvgSpread,
		RotationFamily: plant.RotationFamily,
		Notes:          plant.Notes,
	}
}

// ListPlantTypes godoc
// @Summary List plant types
// @Description List the shared plant catalog, ordered by common name
// @Tags plants
// @Produce json
// @Success 200 {array} PlantTypeResponse
// @Failure 500 {object} ErrorResponse
// @Router /plants [get]
func (h *PlantHandler) ListPlantTypes(c *gin.Context) {
	plants, err := h.plantService.ListPlantTypes()
	if err != nil {
		log.Printf("Error listing plant types: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve plant types"})
		return
	}

	response := make([]PlantTypeResponse, len(plants))
	for i := range plants {
		response[i] = toPlantTypeResponse(&plants[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetPlantType godoc
// @Summary Get a plant type
// @Tags plants
// @Produce json
// @Param id path int true "Plant type ID"
// @Success 200 {object} PlantTypeResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id} [get]
func (h *PlantHandler) GetPlantType(c *gin.Context) {
	plantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	plant, err := h.plantService.GetPlantType(plantID)
	if err != nil {
		if errors.Is(err, services.ErrPlantTypeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "plant type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve plant type"})
		return
	}

	c.JSON(http.StatusOK, toPlantTypeResponse(plant))
}

// CreatePlantType godoc
// @Summary Create a plant type
// @Description Add an entry to the shared plant catalog
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlantTypeRequest true "Plant type"
// @Success 201 {object} PlantTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plants [post]
func (h *PlantHandler) CreatePlantType(c *gin.Context) {
	var req CreatePlantTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	plant, err := h.plantService.CreatePlantType(services.PlantTypeInput{
		CommonName:     req.CommonName,
		ScientificName: req.ScientificName,
		Description:    req.Description,
		AvgHeight:      req.AvgHeight,
		AvgSpread:      req.AvgSpread,
		RotationFamily: req.RotationFamily,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePlantType) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "plant type with this common name already exists"})
			return
		}
		log.Printf("Error creating plant type: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create plant type"})
		return
	}

	c.JSON(http.StatusCreated, toPlantTypeResponse(plant))
}

// ImportPlantsCSV godoc
// @Summary Import plant types from CSV
// @Description Upload a CSV catalog; duplicate common names are skipped
// @Tags plants
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} services.CSVImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plants/import [post]
func (h *PlantHandler) ImportPlantsCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file part in request"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.plantService.ImportCSV(file)
	if err != nil {
		log.Printf("Error importing plants: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to import plants"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Recommendations godoc
// @Summary Recommend plants for a bed
// @Description List plant types outside the rotation family of the bed's most recent planting
// @Tags garden-beds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bed ID"
// @Success 200 {object} RecommendationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden-beds/{id}/recommendations [get]
func (h *PlantHandler) Recommendations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.plantService.Recommend(userID, bedID)
	if err != nil {
		if errors.Is(err, services.ErrBedNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "garden bed not found or access denied"})
			return
		}
		log.Printf("Error generating recommendations for bed %d: %v", bedID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate recommendations"})
		return
	}

	response := RecommendationsResponse{
		LastPlantedFamily: result.LastPlantedFamily,
		Recommendations:   make([]PlantTypeResponse, len(result.Recommendations)),
	}
	for i := range result.Recommendations {
		response.Recommendations[i] = toPlantTypeResponse(&result.Recommendations[i])
	}
	c.JSON(http.StatusOK, response)
}
