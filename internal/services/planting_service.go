package services

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
)

var (
	ErrPlantingNotFound = errors.New("planting record not found")
	// ErrNotPlantingOwner is returned when the planting exists but its bed
	// belongs to a different user.
	ErrNotPlantingOwner = errors.New("planting belongs to another user")
)

type PlantingInput struct {
	PlantTypeID         uint
	Year                int
	Season              string
	DatePlanted         *models.Date
	ExpectedHarvestDate *models.Date
	Notes               string
	Quantity            string
	IsCurrent           *bool
}

type PlantingUpdate struct {
	PlantTypeID         *uint
	Year                *int
	Season              *string
	DatePlanted         *models.Date
	ClearDatePlanted    bool
	ExpectedHarvestDate *models.Date
	ClearHarvestDate    bool
	Notes               *string
	Quantity            *string
	IsCurrent           *bool
}

type PlantingService struct {
	plantingRepo *repository.PlantingRepository
	bedRepo      *repository.BedRepository
	plantRepo    *repository.PlantTypeRepository
}

func NewPlantingService(plantingRepo *repository.PlantingRepository, bedRepo *repository.BedRepository, plantRepo *repository.PlantTypeRepository) *PlantingService {
	return &PlantingService{
		plantingRepo: plantingRepo,
		bedRepo:      bedRepo,
		plantRepo:    plantRepo,
	}
}

func (s *PlantingService) ListForBed(userID, bedID uint, activeOnly bool) ([]models.Planting, error) {
	bed, err := s.bedRepo.FindByIDAndUser(bedID, userID)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}
	return s.plantingRepo.FindByBed(bedID, activeOnly)
}

func (s *PlantingService) Create(userID, bedID uint, input PlantingInput) (*models.Planting, error) {
	bed, err := s.bedRepo.FindByIDAndUser(bedID, userID)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	plant, err := s.plantRepo.FindByID(input.PlantTypeID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantTypeNotFound
	}

	isCurrent := true
	if input.IsCurrent != nil {
		isCurrent = *input.IsCurrent
	}

	planting := &models.Planting{
		BedID:               bedID,
		PlantTypeID:         input.PlantTypeID,
		Year:                input.Year,
		Season:              input.Season,
		DatePlanted:         input.DatePlanted,
		ExpectedHarvestDate: input.ExpectedHarvestDate,
		Notes:               input.Notes,
		Quantity:            input.Quantity,
		IsCurrent:           isCurrent,
	}
	if err := s.plantingRepo.Create(planting); err != nil {
		return nil, err
	}
	planting.PlantType = *plant
	return planting, nil
}

// findOwned fetches a planting and authorizes through its owning bed.
func (s *PlantingService) findOwned(userID, plantingID uint) (*models.Planting, error) {
	planting, err := s.plantingRepo.FindByID(plantingID)
	if err != nil {
		return nil, err
	}
	if planting == nil {
		return nil, ErrPlantingNotFound
	}

	bed, err := s.bedRepo.FindByIDAndUser(planting.BedID, userID)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, ErrNotPlantingOwner
	}
	return planting, nil
}

func (s *PlantingService) Update(userID, plantingID uint, update PlantingUpdate) (*models.Planting, error) {
	planting, err := s.findOwned(userID, plantingID)
	if err != nil {
		return nil, err
	}

	if update.PlantTypeID != nil {
		plant, err := s.plantRepo.FindByID(*update.PlantTypeID)
		if err != nil {
			return nil, err
		}
		if plant == nil {
			return nil, ErrPlantTypeNotFound
		}
		planting.PlantTypeID = *update.PlantTypeID
		planting.PlantType = *plant
	}
	if update.Year != nil {
		planting.Year = *update.Year
	}
	if update.Season != nil {
		planting.Season = *update.Season
	}
	if update.DatePlanted != nil {
		planting.DatePlanted = update.DatePlanted
	} else if update.ClearDatePlanted {
		planting.DatePlanted = nil
	}
	if update.ExpectedHarvestDate != nil {
		planting.ExpectedHarvestDate = update.ExpectedHarvestDate
	} else if update.ClearHarvestDate {
		planting.ExpectedHarvestDate = nil
	}
	if update.Notes != nil {
		planting.Notes = *update.Notes
	}
	if update.Quantity != nil {
		planting.Quantity = *update.Quantity
	}
	if update.IsCurrent != nil {
		planting.IsCurrent = *update.IsCurrent
	}

	if err := s.plantingRepo.Update(planting); err != nil {
		return nil, err
	}
	return planting, nil
}

func (s *PlantingService) Delete(userID, plantingID uint) error {
	planting, err := s.findOwned(userID, plantingID)
	if err != nil {
		return err
	}
	return s.plantingRepo.Delete(planting)
}
