package repository

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"gorm.io/gorm"
)

type PlantingRepository struct {
	db *gorm.DB
}

func NewPlantingRepository(db *gorm.DB) *PlantingRepository {
	return &PlantingRepository{db: db}
}

func (r *PlantingRepository) Create(planting *models.Planting) error {
	return r.db.Create(planting).Error
}

func (r *PlantingRepository) CreateInTx(tx *gorm.DB, planting *models.Planting) error {
	return tx.Create(planting).Error
}

func (r *PlantingRepository) FindByID(id uint) (*models.Planting, error) {
	var planting models.Planting
	err := r.db.Preload("PlantType").First(&planting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &planting, nil
}

func (r *PlantingRepository) FindByBed(bedID uint, activeOnly bool) ([]models.Planting, error) {
	query := r.db.Where("bed_id = ?", bedID).
		Preload("PlantType").
		Order("year DESC, season")
	if activeOnly {
		query = query.Where("is_current = ?", true)
	}
	var plantings []models.Planting
	err := query.Find(&plantings).Error
	return plantings, err
}

// FindMostRecentByBed returns the newest planting for a bed, ordered by year
// then season descending, or nil when the bed has no history.
func (r *PlantingRepository) FindMostRecentByBed(bedID uint) (*models.Planting, error) {
	var planting models.Planting
	err := r.db.Where("bed_id = ?", bedID).
		Preload("PlantType").
		Order("year DESC, season DESC").
		First(&planting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &planting, nil
}

// FindByOwner returns every planting whose bed belongs to the user.
func (r *PlantingRepository) FindByOwner(userID uint) ([]models.Planting, error) {
	var plantings []models.Planting
	err := r.db.
		Joins("JOIN garden_beds ON garden_beds.id = plantings.bed_id").
		Where("garden_beds.user_id = ? AND garden_beds.deleted_at IS NULL", userID).
		Preload("PlantType").
		Order("plantings.year DESC, plantings.season").
		Find(&plantings).Error
	return plantings, err
}

func (r *PlantingRepository) Update(planting *models.Planting) error {
	return r.db.Save(planting).Error
}

func (r *PlantingRepository) Delete(planting *models.Planting) error {
	return r.db.Delete(planting).Error
}

// DeleteByOwnerInTx removes all plantings reachable through the user's beds.
func (r *PlantingRepository) DeleteByOwnerInTx(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where(
		"bed_id IN (?)",
		tx.Model(&models.GardenBed{}).Select("id").Where("user_id = ?", userID),
	).Delete(&models.Planting{}).Error
}
