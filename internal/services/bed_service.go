package services

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/hobbygardens/garden-tracker/internal/shapes"
)

var ErrBedNotFound = errors.New("garden bed not found")

type BedInput struct {
	Name        string
	Shape       string
	ShapeParams map[string]interface{}
	UnitMeasure string
	Notes       string
}

// BedUpdate carries a partial update; nil fields are left untouched.
type BedUpdate struct {
	Name        *string
	Shape       *string
	ShapeParams map[string]interface{}
	UnitMeasure *string
	Notes       *string
}

type BedService struct {
	bedRepo *repository.BedRepository
}

func NewBedService(bedRepo *repository.BedRepository) *BedService {
	return &BedService{bedRepo: bedRepo}
}

func (s *BedService) ListBeds(userID uint) ([]models.GardenBed, error) {
	return s.bedRepo.FindByUser(userID)
}

func (s *BedService) GetBed(userID, bedID uint) (*models.GardenBed, error) {
	bed, err := s.bedRepo.FindByIDAndUser(bedID, userID)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}
	return bed, nil
}

// CreateBed persists a new bed after the shape definition passes validation.
// Nothing is stored when validation fails.
func (s *BedService) CreateBed(userID uint, input BedInput) (*models.GardenBed, error) {
	if err := shapes.Validate(input.Shape, input.ShapeParams); err != nil {
		return nil, err
	}

	bed := &models.GardenBed{
		UserID:      userID,
		Name:        input.Name,
		Shape:       input.Shape,
		ShapeParams: models.JSONMap(input.ShapeParams),
		UnitMeasure: input.UnitMeasure,
		Notes:       input.Notes,
	}
	if err := s.bedRepo.Create(bed); err != nil {
		return nil, err
	}
	return bed, nil
}

// UpdateBed applies the provided fields and re-validates the resulting shape
// definition, so a bed never holds params that disagree with its shape.
func (s *BedService) UpdateBed(userID, bedID uint, update BedUpdate) (*models.GardenBed, error) {
	bed, err := s.GetBed(userID, bedID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		bed.Name = *update.Name
	}
	if update.Shape != nil {
		bed.Shape = *update.Shape
	}
	if update.ShapeParams != nil {
		bed.ShapeParams = models.JSONMap(update.ShapeParams)
	}
	if update.UnitMeasure != nil {
		bed.UnitMeasure = *update.UnitMeasure
	}
	if update.Notes != nil {
		bed.Notes = *update.Notes
	}

	if err := shapes.Validate(bed.Shape, bed.ShapeParams); err != nil {
		return nil, err
	}

	if err := s.bedRepo.Update(bed); err != nil {
		return nil, err
	}
	return bed, nil
}

// DeleteBed removes the bed; its plantings go with it (cascade).
func (s *BedService) DeleteBed(userID, bedID uint) error {
	bed, err := s.GetBed(userID, bedID)
	if err != nil {
		return err
	}
	return s.bedRepo.Delete(bed)
}
