package services

import (
	"encoding/json"
	"time"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
)

// ExportDocument is the full-account data document exchanged by the export
// and import endpoints. Ids inside it belong to the exporting database and
// are remapped on import.
type ExportDocument struct {
	UserPreferences UserPreferences   `json:"user_preferences"`
	PlantTypes      []PlantTypeRecord `json:"plant_types"`
	GardenBeds      []GardenBedRecord `json:"garden_beds"`
	Plantings       []PlantingRecord  `json:"plantings"`
	GardenLayout    LayoutRecord      `json:"garden_layout"`
}

type UserPreferences struct {
	PreferredUnits string `json:"preferred_units"`
}

type PlantTypeRecord struct {
	ID             uint     `json:"id"`
	CommonName     string   `json:"common_name"`
	ScientificName string   `json:"scientific_name"`
	Description    string   `json:"description"`
	AvgHeight      *float64 `json:"avg_height"`
	AvgSpread      *float64 `json:"avg_spread"`
	RotationFamily string   `json:"rotation_family"`
	Notes          string   `json:"notes"`
}

type GardenBedRecord struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Shape        string                 `json:"shape"`
	ShapeParams  map[string]interface{} `json:"shape_params"`
	UnitMeasure  string                 `json:"unit_measure"`
	Notes        string                 `json:"notes"`
	CreationDate *time.Time             `json:"creation_date,omitempty"`
	LastModified *time.Time             `json:"last_modified,omitempty"`
}

type PlantingRecord struct {
	ID                  uint         `json:"id"`
	BedID               uint         `json:"bed_id"`
	PlantTypeID         uint         `json:"plant_type_id"`
	Year                int          `json:"year"`
	Season              string       `json:"season"`
	DatePlanted         *models.Date `json:"date_planted"`
	ExpectedHarvestDate *models.Date `json:"expected_harvest_date"`
	Notes               string       `json:"notes"`
	Quantity            string       `json:"quantity"`
	IsCurrent           bool         `json:"is_current"`
}

// LayoutRecord marshals as {} when the user has no layout.
type LayoutRecord struct {
	ID           uint                   `json:"id,omitempty"`
	Layout       map[string]interface{} `json:"layout,omitempty"`
	LastModified *time.Time             `json:"last_modified,omitempty"`
}

type ExportService struct {
	userRepo     *repository.UserRepository
	plantRepo    *repository.PlantTypeRepository
	bedRepo      *repository.BedRepository
	plantingRepo *repository.PlantingRepository
	layoutRepo   *repository.LayoutRepository
}

func NewExportService(
	userRepo *repository.UserRepository,
	plantRepo *repository.PlantTypeRepository,
	bedRepo *repository.BedRepository,
	plantingRepo *repository.PlantingRepository,
	layoutRepo *repository.LayoutRepository,
) *ExportService {
	return &ExportService{
		userRepo:     userRepo,
		plantRepo:    plantRepo,
		bedRepo:      bedRepo,
		plantingRepo: plantingRepo,
		layoutRepo:   layoutRepo,
	}
}

// Export assembles the user's complete dataset. Plant types are global, so
// the whole catalog goes out, not just the types the user has planted.
func (s *ExportService) Export(userID uint) (*ExportDocument, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	plants, err := s.plantRepo.FindAll()
	if err != nil {
		return nil, err
	}
	beds, err := s.bedRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	plantings, err := s.plantingRepo.FindByOwner(userID)
	if err != nil {
		return nil, err
	}
	layout, err := s.layoutRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	doc := &ExportDocument{
		UserPreferences: UserPreferences{PreferredUnits: user.PreferredUnits},
		PlantTypes:      make([]PlantTypeRecord, len(plants)),
		GardenBeds:      make([]GardenBedRecord, len(beds)),
		Plantings:       make([]PlantingRecord, len(plantings)),
	}

	for i, p := range plants {
		doc.PlantTypes[i] = PlantTypeRecord{
			ID:             p.ID,
			CommonName:     p.CommonName,
			ScientificName: p.ScientificName,
			Description:    p.Description,
			AvgHeight:      p.AvgHeight,
			AvgSpread:      p.AvgSpread,
			RotationFamily: p.RotationFamily,
			Notes:          p.Notes,
		}
	}

	for i, b := range beds {
		created := b.CreatedAt
		modified := b.UpdatedAt
		doc.GardenBeds[i] = GardenBedRecord{
			ID:           b.ID,
			Name:         b.Name,
			Shape:        b.Shape,
			ShapeParams:  b.ShapeParams,
			UnitMeasure:  b.UnitMeasure,
			Notes:        b.Notes,
			CreationDate: &created,
			LastModified: &modified,
		}
	}

	for i, p := range plantings {
		doc.Plantings[i] = PlantingRecord{
			ID:                  p.ID,
			BedID:               p.BedID,
			PlantTypeID:         p.PlantTypeID,
			Year:                p.Year,
			Season:              p.Season,
			DatePlanted:         p.DatePlanted,
			ExpectedHarvestDate: p.ExpectedHarvestDate,
			Notes:               p.Notes,
			Quantity:            p.Quantity,
			IsCurrent:           p.IsCurrent,
		}
	}

	if layout != nil {
		parsed := map[string]interface{}{}
		if err := json.Unmarshal([]byte(layout.LayoutJSON), &parsed); err == nil {
			modified := layout.UpdatedAt
			doc.GardenLayout = LayoutRecord{
				ID:           layout.ID,
				Layout:       parsed,
				LastModified: &modified,
			}
		}
	}

	return doc, nil
}
