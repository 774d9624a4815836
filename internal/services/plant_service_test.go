package services

import (
	"strings"
	"testing"

	"github.com/hobbygardens/garden-tracker/internal/database"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/hobbygardens/garden-tracker/internal/shapes"
	"github.com/stretchr/testify/assert"
)

func setupPlantTestDB(t *testing.T) (*repository.UserRepository, *repository.BedRepository, *repository.PlantingRepository, *PlantService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	plantRepo := repository.NewPlantTypeRepository(db)
	bedRepo := repository.NewBedRepository(db)
	plantingRepo := repository.NewPlantingRepository(db)
	plantService := NewPlantService(plantRepo, bedRepo, plantingRepo)

	return userRepo, bedRepo, plantingRepo, plantService
}

func TestPlantService_CreateAndList(t *testing.T) {
	_, _, _, plantService := setupPlantTestDB(t)

	_, err := plantService.CreatePlantType(PlantTypeInput{
		CommonName:     "Tomato",
		ScientificName: "Solanum lycopersicum",
		RotationFamily: "Nightshade",
	})
	assert.NoError(t, err)

	_, err = plantService.CreatePlantType(PlantTypeInput{
		CommonName:     "Carrot",
		ScientificName: "Daucus carota",
		RotationFamily: "Root Vegetable",
	})
	assert.NoError(t, err)

	plants, err := plantService.ListPlantTypes()
	assert.NoError(t, err)
	assert.Len(t, plants, 2)
	assert.Equal(t, "Carrot", plants[0].CommonName, "catalog is ordered by common name")
	assert.Equal(t, "Tomato", plants[1].CommonName)
}

func TestPlantService_CreateDuplicate(t *testing.T) {
	_, _, _, plantService := setupPlantTestDB(t)

	_, err := plantService.CreatePlantType(PlantTypeInput{
		CommonName:     "Tomato",
		ScientificName: "Solanum lycopersicum",
	})
	assert.NoError(t, err)

	_, err = plantService.CreatePlantType(PlantTypeInput{
		CommonName:     "Tomato",
		ScientificName: "Solanum lycopersicum",
	})
	assert.Equal(t, ErrDuplicatePlantType, err)
}

func TestPlantService_GetPlantTypeNotFound(t *testing.T) {
	_, _, _, plantService := setupPlantTestDB(t)

	_, err := plantService.GetPlantType(999)
	assert.Equal(t, ErrPlantTypeNotFound, err)
}

func TestPlantService_ImportCSV(t *testing.T) {
	_, _, _, plantService := setupPlantTestDB(t)

	_, err := plantService.CreatePlantType(PlantTypeInput{
		CommonName:     "Tomato",
		ScientificName: "Solanum lycopersicum",
	})
	assert.NoError(t, err)

	csvData := `common_name,scientific_name,rotation_family,avg_height
Tomato,Solanum lycopersicum,Nightshade,1.5
Carrot,Daucus carota,Root Vegetable,0.3
,Missing name,Whatever,
Lettuce,Lactuca sativa,Leafy Green,
`
	result, err := plantService.ImportCSV(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 4")
	assert.Contains(t, result.Errors[0], "Missing required fields")

	plants, err := plantService.ListPlantTypes()
	assert.NoError(t, err)
	assert.Len(t, plants, 3)

	carrot := plants[0]
	assert.Equal(t, "Carrot", carrot.CommonName)
	assert.Equal(t, "Root Vegetable", carrot.RotationFamily)
	assert.NotNil(t, carrot.AvgHeight)
	assert.Equal(t, 0.3, *carrot.AvgHeight)
}

func TestPlantService_ImportCSVInvalidNumber(t *testing.T) {
	_, _, _, plantService := setupPlantTestDB(t)

	csvData := `common_name,scientific_name,avg_height
Carrot,Daucus carota,tall
`
	result, err := plantService.ImportCSV(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Added)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "avg_height")
}

func TestPlantService_RecommendEmptyBed(t *testing.T) {
	userRepo, bedRepo, _, plantService := setupPlantTestDB(t)

	user := &models.User{Email: "alice@example.com", PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	assert.NoError(t, userRepo.Create(user))

	bed := &models.GardenBed{
		UserID:      user.ID,
		Name:        "Fresh Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: models.JSONMap{"width": 4.0, "height": 4.0},
		UnitMeasure: "ft",
	}
	assert.NoError(t, bedRepo.Create(bed))

	_, err := plantService.CreatePlantType(PlantTypeInput{CommonName: "Tomato", ScientificName: "S. lycopersicum", RotationFamily: "Nightshade"})
	assert.NoError(t, err)
	_, err = plantService.CreatePlantType(PlantTypeInput{CommonName: "Carrot", ScientificName: "D. carota", RotationFamily: "Root Vegetable"})
	assert.NoError(t, err)

	result, err := plantService.Recommend(user.ID, bed.ID)
	assert.NoError(t, err)
	assert.Empty(t, result.LastPlantedFamily)
	assert.Len(t, result.Recommendations, 2, "a bed with no history gets the whole catalog")
}

func TestPlantService_RecommendExcludesLastFamily(t *testing.T) {
	userRepo, bedRepo, plantingRepo, plantService := setupPlantTestDB(t)

	user := &models.User{Email: "alice@example.com", PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	assert.NoError(t, userRepo.Create(user))

	bed := &models.GardenBed{
		UserID:      user.ID,
		Name:        "Rotation Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: models.JSONMap{"width": 4.0, "height": 4.0},
		UnitMeasure: "ft",
	}
	assert.NoError(t, bedRepo.Create(bed))

	tomato, err := plantService.CreatePlantType(PlantTypeInput{CommonName: "Tomato", ScientificName: "S. lycopersicum", RotationFamily: "Nightshade"})
	assert.NoError(t, err)
	potato, err := plantService.CreatePlantType(PlantTypeInput{CommonName: "Potato", ScientificName: "S. tuberosum", RotationFamily: "Nightshade"})
	assert.NoError(t, err)
	_, err = plantService.CreatePlantType(PlantTypeInput{CommonName: "Carrot", ScientificName: "D. carota", RotationFamily: "Root Vegetable"})
	assert.NoError(t, err)

	// Older planting in a different family; the most recent one wins.
	assert.NoError(t, plantingRepo.Create(&models.Planting{
		BedID: bed.ID, PlantTypeID: potato.ID, Year: 2023, Season: "Summer", IsCurrent: false,
	}))
	assert.NoError(t, plantingRepo.Create(&models.Planting{
		BedID: bed.ID, PlantTypeID: tomato.ID, Year: 2025, Season: "Summer", IsCurrent: true,
	}))

	result, err := plantService.Recommend(user.ID, bed.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Nightshade", result.LastPlantedFamily)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Carrot", result.Recommendations[0].CommonName)
}

func TestPlantService_RecommendWrongUser(t *testing.T) {
	userRepo, bedRepo, _, plantService := setupPlantTestDB(t)

	alice := &models.User{Email: "alice@example.com", PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	mallory := &models.User{Email: "mallory@example.com", PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	assert.NoError(t, userRepo.Create(alice))
	assert.NoError(t, userRepo.Create(mallory))

	bed := &models.GardenBed{
		UserID:      alice.ID,
		Name:        "Private Bed",
		Shape:       shapes.Circle,
		ShapeParams: models.JSONMap{"radius": 2.0},
		UnitMeasure: "m",
	}
	assert.NoError(t, bedRepo.Create(bed))

	_, err := plantService.Recommend(mallory.ID, bed.ID)
	assert.Equal(t, ErrBedNotFound, err)
}
