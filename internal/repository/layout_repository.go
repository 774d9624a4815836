package repository

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"gorm.io/gorm"
)

type LayoutRepository struct {
	db *gorm.DB
}

func NewLayoutRepository(db *gorm.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

func (r *LayoutRepository) FindByUser(userID uint) (*models.GardenLayout, error) {
	var layout models.GardenLayout
	err := r.db.Where("user_id = ?", userID).First(&layout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &layout, nil
}

func (r *LayoutRepository) Create(layout *models.GardenLayout) error {
	return r.db.Create(layout).Error
}

func (r *LayoutRepository) CreateInTx(tx *gorm.DB, layout *models.GardenLayout) error {
	return tx.Create(layout).Error
}

func (r *LayoutRepository) Update(layout *models.GardenLayout) error {
	return r.db.Save(layout).Error
}

// DeleteByUserInTx removes the layout for good: a soft-deleted row would
// still occupy the unique user_id index and block the replacement.
func (r *LayoutRepository) DeleteByUserInTx(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&models.GardenLayout{}).Error
}
