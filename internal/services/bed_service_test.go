package services

import (
	"testing"

	"github.com/hobbygardens/garden-tracker/internal/database"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/hobbygardens/garden-tracker/internal/shapes"
	"github.com/stretchr/testify/assert"
)

func setupBedTestDB(t *testing.T) (*repository.UserRepository, *repository.BedRepository, *BedService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	bedRepo := repository.NewBedRepository(db)
	bedService := NewBedService(bedRepo)

	return userRepo, bedRepo, bedService
}

func createBedTestUser(t *testing.T, userRepo *repository.UserRepository, email string) *models.User {
	user := &models.User{Email: email, PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	err := userRepo.Create(user)
	assert.NoError(t, err)
	return user
}

func TestBedService_CreateBed(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	bed, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "North Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: map[string]interface{}{"width": 4.0, "height": 8.0},
		UnitMeasure: "ft",
	})
	assert.NoError(t, err)
	assert.Equal(t, "North Bed", bed.Name)
	assert.Equal(t, user.ID, bed.UserID)
	assert.NotZero(t, bed.ID)
}

func TestBedService_CreateBedInvalidShape(t *testing.T) {
	userRepo, bedRepo, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	_, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "Weird Bed",
		Shape:       "hexagon",
		ShapeParams: map[string]interface{}{"side": 2.0},
		UnitMeasure: "ft",
	})
	assert.True(t, shapes.IsValidationError(err))

	beds, _ := bedRepo.FindByUser(user.ID)
	assert.Empty(t, beds, "nothing should be stored when validation fails")
}

func TestBedService_CreateBedBadParams(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	_, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "Flat Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: map[string]interface{}{"width": 4.0, "height": -1.0},
		UnitMeasure: "ft",
	})
	assert.True(t, shapes.IsValidationError(err))
	assert.Contains(t, err.Error(), "positive number")
}

func TestBedService_GetBedWrongUser(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	alice := createBedTestUser(t, userRepo, "alice@example.com")
	mallory := createBedTestUser(t, userRepo, "mallory@example.com")

	bed, err := bedService.CreateBed(alice.ID, BedInput{
		Name:        "Private Bed",
		Shape:       shapes.Circle,
		ShapeParams: map[string]interface{}{"radius": 3.0},
		UnitMeasure: "m",
	})
	assert.NoError(t, err)

	_, err = bedService.GetBed(mallory.ID, bed.ID)
	assert.Equal(t, ErrBedNotFound, err)
}

func TestBedService_UpdateBedPartial(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	bed, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "North Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: map[string]interface{}{"width": 4.0, "height": 8.0},
		UnitMeasure: "ft",
	})
	assert.NoError(t, err)

	newName := "South Bed"
	updated, err := bedService.UpdateBed(user.ID, bed.ID, BedUpdate{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "South Bed", updated.Name)
	assert.Equal(t, shapes.Rectangle, updated.Shape)
	assert.Equal(t, 4.0, updated.ShapeParams["width"])
}

func TestBedService_UpdateBedRevalidatesShape(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	bed, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "North Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: map[string]interface{}{"width": 4.0, "height": 8.0},
		UnitMeasure: "ft",
	})
	assert.NoError(t, err)

	// Switching shape without compatible params must fail.
	circle := shapes.Circle
	_, err = bedService.UpdateBed(user.ID, bed.ID, BedUpdate{Shape: &circle})
	assert.True(t, shapes.IsValidationError(err))
	assert.Contains(t, err.Error(), "radius")

	// The stored bed is unchanged.
	stored, err := bedService.GetBed(user.ID, bed.ID)
	assert.NoError(t, err)
	assert.Equal(t, shapes.Rectangle, stored.Shape)

	// Shape and params together succeed.
	updated, err := bedService.UpdateBed(user.ID, bed.ID, BedUpdate{
		Shape:       &circle,
		ShapeParams: map[string]interface{}{"radius": 3.0},
	})
	assert.NoError(t, err)
	assert.Equal(t, shapes.Circle, updated.Shape)
}

func TestBedService_DeleteBed(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	user := createBedTestUser(t, userRepo, "alice@example.com")

	bed, err := bedService.CreateBed(user.ID, BedInput{
		Name:        "North Bed",
		Shape:       shapes.Rectangle,
		ShapeParams: map[string]interface{}{"width": 4.0, "height": 8.0},
		UnitMeasure: "ft",
	})
	assert.NoError(t, err)

	err = bedService.DeleteBed(user.ID, bed.ID)
	assert.NoError(t, err)

	_, err = bedService.GetBed(user.ID, bed.ID)
	assert.Equal(t, ErrBedNotFound, err)
}

func TestBedService_DeleteBedWrongUser(t *testing.T) {
	userRepo, _, bedService := setupBedTestDB(t)
	alice := createBedTestUser(t, userRepo, "alice@example.com")
	mallory := createBedTestUser(t, userRepo, "mallory@example.com")

	bed, err := bedService.CreateBed(alice.ID, BedInput{
		Name:        "Private Bed",
		Shape:       shapes.Circle,
		ShapeParams: map[string]interface{}{"radius": 3.0},
		UnitMeasure: "m",
	})
	assert.NoError(t, err)

	err = bedService.DeleteBed(mallory.ID, bed.ID)
	assert.Equal(t, ErrBedNotFound, err)

	stored, err := bedService.GetBed(alice.ID, bed.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Private Bed", stored.Name)
}
