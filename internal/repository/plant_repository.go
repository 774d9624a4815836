package repository

import (
	"errors"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"gorm.io/gorm"
)

type PlantTypeRepository struct {
	db *gorm.DB
}

func NewPlantTypeRepository(db *gorm.DB) *PlantTypeRepository {
	return &PlantTypeRepository{db: db}
}

func (r *PlantTypeRepository) Create(plant *models.PlantType) error {
	return r.db.Create(plant).Error
}

func (r *PlantTypeRepository) FindByID(id uint) (*models.PlantType, error) {
	var plant models.PlantType
	err := r.db.First(&plant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

func (r *PlantTypeRepository) FindByCommonName(commonName string) (*models.PlantType, error) {
	return findByCommonName(r.db, commonName)
}

func (r *PlantTypeRepository) FindByCommonNameInTx(tx *gorm.DB, commonName string) (*models.PlantType, error) {
	return findByCommonName(tx, commonName)
}

func findByCommonName(db *gorm.DB, commonName string) (*models.PlantType, error) {
	var plant models.PlantType
	err := db.Where("common_name = ?", commonName).First(&plant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

func (r *PlantTypeRepository) FindAll() ([]models.PlantType, error) {
	var plants []models.PlantType
	err := r.db.Order("common_name").Find(&plants).Error
	return plants, err
}

// FindExcludingFamily returns plant types outside the given rotation family,
// or all plant types when family is empty.
func (r *PlantTypeRepository) FindExcludingFamily(family string) ([]models.PlantType, error) {
	query := r.db.Order("common_name")
	if family != "" {
		query = query.Where("rotation_family <> ?", family)
	}
	var plants []models.PlantType
	err := query.Find(&plants).Error
	return plants, err
}

func (r *PlantTypeRepository) CreateInTx(tx *gorm.DB, plant *models.PlantType) error {
	return tx.Create(plant).Error
}

func (r *PlantTypeRepository) UpdateInTx(tx *gorm.DB, plant *models.PlantType) error {
	return tx.Save(plant).Error
}
