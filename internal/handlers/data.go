package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hobbygardens/garden-tracker/internal/middleware"
	"github.com/hobbygardens/garden-tracker/internal/services"
)

type DataHandler struct {
	exportService *services.ExportService
	importService *services.ImportService
}

func NewDataHandler(exportService *services.ExportService, importService *services.ImportService) *DataHandler {
	return &DataHandler{
		exportService: exportService,
		importService: importService,
	}
}

// ExportData godoc
// @Summary Export garden data
// @Description Download the user's garden data as a single JSON document
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ExportDocument
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /data/export [get]
func (h *DataHandler) ExportData(c *gin.Context) {
	userID := middleware.GetUserID(c)

	doc, err := h.exportService.Export(userID)
	if err != nil {
		log.Printf("Error exporting data for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to export data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="garden-export.json"`)
	c.JSON(http.StatusOK, doc)
}

// ImportData godoc
// @Summary Import garden data
// @Description Replace the user's beds, plantings and layout with an exported document
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /data/import [post]
func (h *DataHandler) ImportData(c *gin.Context) {
	userID := middleware.GetUserID(c)

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	if err := h.importService.Import(userID, raw); err != nil {
		switch {
		case errors.Is(err, services.ErrMalformedDocument), errors.Is(err, services.ErrMissingKeys):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("Error importing data for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "import failed; no changes were applied"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}
