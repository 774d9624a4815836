package repository

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepository(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

func (r *BedRepository) Create(bed *models.GardenBed) error {
	return r.db.Create(bed).Error
}

func (r *BedRepository) CreateInTx(tx *gorm.DB, bed *models.GardenBed) error {
	return tx.Create(bed).Error
}

func (r *BedRepository) FindByUser(userID uint) ([]models.GardenBed, error) {
	var beds []models.GardenBed
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&beds).Error
	return beds, err
}

// FindByIDAndUser returns nil when the bed does not exist or belongs to
// another user; callers treat both the same way.
func (r *BedRepository) FindByIDAndUser(id, userID uint) (*models.GardenBed, error) {
	var bed models.GardenBed
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *BedRepository) Update(bed *models.GardenBed) error {
	return r.db.Save(bed).Error
}

func (r *BedRepository) Delete(bed *models.GardenBed) error {
	return r.db.Select("Plantings").Delete(bed).Error
}

func (r *BedRepository) DeleteByUserInTx(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&models.GardenBed{}).Error
}
