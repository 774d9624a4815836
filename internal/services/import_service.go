package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/hobbygardens/garden-tracker/internal/shapes"
	"gorm.io/gorm"
)

var (
	ErrMalformedDocument = errors.New("import document is not valid JSON")
	ErrMissingKeys       = errors.New("import document is missing required keys")
	ErrImportFailed      = errors.New("import failed")
)

var requiredDocumentKeys = []string{
	"user_preferences",
	"plant_types",
	"garden_beds",
	"plantings",
	"garden_layout",
}

type ImportService struct {
	db           *gorm.DB
	userRepo     *repository.UserRepository
	plantRepo    *repository.PlantTypeRepository
	bedRepo      *repository.BedRepository
	plantingRepo *repository.PlantingRepository
	layoutRepo   *repository.LayoutRepository
}

func NewImportService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	plantRepo *repository.PlantTypeRepository,
	bedRepo *repository.BedRepository,
	plantingRepo *repository.PlantingRepository,
	layoutRepo *repository.LayoutRepository,
) *ImportService {
	return &ImportService{
		db:           db,
		userRepo:     userRepo,
		plantRepo:    plantRepo,
		bedRepo:      bedRepo,
		plantingRepo: plantingRepo,
		layoutRepo:   layoutRepo,
	}
}

// Import replaces the user's beds, plantings and layout with the contents of
// an exported document and upserts the shared plant catalog. It runs as one
// transaction: any failing step rolls back every change.
//
// Ids in the document belong to the exporting database. Each entity kind gets
// its own old-id to new-id map, and every cross-entity reference is resolved
// through those maps, never taken from the document directly.
func (s *ImportService) Import(userID uint, raw []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var missing []string
	for _, key := range requiredDocumentKeys {
		if _, ok := top[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	var prefs UserPreferences
	if err := json.Unmarshal(top["user_preferences"], &prefs); err != nil {
		return fmt.Errorf("%w: user_preferences: %v", ErrMalformedDocument, err)
	}
	var plantTypes []PlantTypeRecord
	if err := json.Unmarshal(top["plant_types"], &plantTypes); err != nil {
		return fmt.Errorf("%w: plant_types: %v", ErrMalformedDocument, err)
	}
	var beds []GardenBedRecord
	if err := json.Unmarshal(top["garden_beds"], &beds); err != nil {
		return fmt.Errorf("%w: garden_beds: %v", ErrMalformedDocument, err)
	}
	var plantings []PlantingRecord
	if err := json.Unmarshal(top["plantings"], &plantings); err != nil {
		return fmt.Errorf("%w: plantings: %v", ErrMalformedDocument, err)
	}

	// The layout is best-effort: a missing or non-object layout skips layout
	// import without failing the rest.
	var layoutRec struct {
		Layout map[string]interface{} `json:"layout"`
	}
	json.Unmarshal(top["garden_layout"], &layoutRec)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		// Step 1: clear the user's plantings, layout and beds. Plant types
		// are shared and never deleted.
		if err := s.plantingRepo.DeleteByOwnerInTx(tx, userID); err != nil {
			return err
		}
		if err := s.layoutRepo.DeleteByUserInTx(tx, userID); err != nil {
			return err
		}
		if err := s.bedRepo.DeleteByUserInTx(tx, userID); err != nil {
			return err
		}

		// Step 2: preferences.
		if prefs.PreferredUnits != "" {
			user.PreferredUnits = prefs.PreferredUnits
			if err := s.userRepo.UpdateInTx(tx, &user); err != nil {
				return err
			}
		}

		// Step 3: upsert plant types by common name.
		plantTypeIDs := make(map[uint]uint, len(plantTypes))
		for _, rec := range plantTypes {
			existing, err := s.plantRepo.FindByCommonNameInTx(tx, rec.CommonName)
			if err != nil {
				return err
			}
			if existing != nil {
				existing.ScientificName = rec.ScientificName
				existing.Description = rec.Description
				existing.AvgHeight = rec.AvgHeight
				existing.AvgSpread = rec.AvgSpread
				existing.RotationFamily = rec.RotationFamily
				existing.Notes = rec.Notes
				if err := s.plantRepo.UpdateInTx(tx, existing); err != nil {
					return err
				}
				plantTypeIDs[rec.ID] = existing.ID
				continue
			}

			plant := &models.PlantType{
				CommonName:     rec.CommonName,
				ScientificName: rec.ScientificName,
				Description:    rec.Description,
				AvgHeight:      rec.AvgHeight,
				AvgSpread:      rec.AvgSpread,
				RotationFamily: rec.RotationFamily,
				Notes:          rec.Notes,
			}
			if err := s.plantRepo.CreateInTx(tx, plant); err != nil {
				return err
			}
			plantTypeIDs[rec.ID] = plant.ID
		}

		// Step 4: recreate beds with fresh ids.
		bedIDs := make(map[uint]uint, len(beds))
		for _, rec := range beds {
			shape := rec.Shape
			if shape == "" {
				shape = shapes.Rectangle
			}
			unit := rec.UnitMeasure
			if unit == "" {
				unit = user.PreferredUnits
			}
			params := rec.ShapeParams
			if params == nil {
				params = map[string]interface{}{}
			}

			bed := &models.GardenBed{
				UserID:      userID,
				Name:        rec.Name,
				Shape:       shape,
				ShapeParams: models.JSONMap(params),
				UnitMeasure: unit,
				Notes:       rec.Notes,
			}
			if err := s.bedRepo.CreateInTx(tx, bed); err != nil {
				return err
			}
			bedIDs[rec.ID] = bed.ID
		}

		// Step 5: plantings, remapped through both id maps. An unresolvable
		// reference skips that planting; it never aborts the import.
		for _, rec := range plantings {
			newBedID, bedOK := bedIDs[rec.BedID]
			newPlantID, plantOK := plantTypeIDs[rec.PlantTypeID]
			if !bedOK || !plantOK {
				log.Printf("Import: skipping planting %d (unresolved bed %d or plant type %d)",
					rec.ID, rec.BedID, rec.PlantTypeID)
				continue
			}

			planting := &models.Planting{
				BedID:               newBedID,
				PlantTypeID:         newPlantID,
				Year:                rec.Year,
				Season:              rec.Season,
				DatePlanted:         rec.DatePlanted,
				ExpectedHarvestDate: rec.ExpectedHarvestDate,
				Notes:               rec.Notes,
				Quantity:            rec.Quantity,
				IsCurrent:           rec.IsCurrent,
			}
			if err := s.plantingRepo.CreateInTx(tx, planting); err != nil {
				return err
			}
		}

		// Step 6: layout, with bed ids rewritten to the fresh ones.
		if layoutRec.Layout != nil {
			rewriteLayoutBedIDs(layoutRec.Layout, bedIDs)
			data, err := json.Marshal(layoutRec.Layout)
			if err != nil {
				return err
			}
			layout := &models.GardenLayout{
				UserID:     userID,
				LayoutJSON: string(data),
			}
			if err := s.layoutRepo.CreateInTx(tx, layout); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}
	return nil
}

// rewriteLayoutBedIDs points the layout's bed placements at the freshly
// assigned bed ids. Entries that do not look like bed placements are left
// alone.
func rewriteLayoutBedIDs(layout map[string]interface{}, bedIDs map[uint]uint) {
	bedEntries, ok := layout["beds"].([]interface{})
	if !ok {
		return
	}
	for _, entry := range bedEntries {
		placement, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		oldID, ok := placement["id"].(float64)
		if !ok {
			continue
		}
		if newID, ok := bedIDs[uint(oldID)]; ok {
			placement["id"] = newID
		}
	}
}
