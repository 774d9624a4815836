package services

import (
	"testing"

	"github.com/hobbygardens/garden-tracker/internal/database"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
)

func setupLayoutTestDB(t *testing.T) (*models.User, *LayoutService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	layoutRepo := repository.NewLayoutRepository(db)
	layoutService := NewLayoutService(layoutRepo)

	user := &models.User{Email: "alice@example.com", PasswordHash: "x", PreferredUnits: models.UnitsImperial}
	assert.NoError(t, userRepo.Create(user))

	return user, layoutService
}

func TestLayoutService_GetLayoutNone(t *testing.T) {
	user, layoutService := setupLayoutTestDB(t)

	view, err := layoutService.GetLayout(user.ID)
	assert.NoError(t, err)
	assert.Nil(t, view)
}

func TestLayoutService_FirstSaveStoresVerbatim(t *testing.T) {
	user, layoutService := setupLayoutTestDB(t)

	view, err := layoutService.SaveLayout(user.ID, map[string]interface{}{
		"beds": []interface{}{
			map[string]interface{}{"id": 1.0, "x": 10.0, "y": 20.0},
		},
		"zoom": 1.5,
	})
	assert.NoError(t, err)
	assert.Equal(t, user.ID, view.UserID)
	assert.Equal(t, 1.5, view.Layout["zoom"])
	assert.Len(t, view.Layout["beds"], 1)
}

func TestLayoutService_LaterSaveMergesShallowly(t *testing.T) {
	user, layoutService := setupLayoutTestDB(t)

	_, err := layoutService.SaveLayout(user.ID, map[string]interface{}{
		"beds": []interface{}{
			map[string]interface{}{"id": 1.0, "x": 10.0},
		},
		"zoom":       1.5,
		"background": "grass",
	})
	assert.NoError(t, err)

	view, err := layoutService.SaveLayout(user.ID, map[string]interface{}{
		"zoom": 2.0,
		"beds": []interface{}{
			map[string]interface{}{"id": 1.0, "x": 99.0},
			map[string]interface{}{"id": 2.0, "x": 5.0},
		},
	})
	assert.NoError(t, err)

	// Incoming keys overwrite, absent keys survive, nested values under a
	// shared key are replaced whole.
	assert.Equal(t, 2.0, view.Layout["zoom"])
	assert.Equal(t, "grass", view.Layout["background"])
	assert.Len(t, view.Layout["beds"], 2)

	stored, err := layoutService.GetLayout(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, view.Layout, stored.Layout)
}

func TestLayoutService_SaveEmptyDocumentKeepsStored(t *testing.T) {
	user, layoutService := setupLayoutTestDB(t)

	_, err := layoutService.SaveLayout(user.ID, map[string]interface{}{"zoom": 1.5})
	assert.NoError(t, err)

	view, err := layoutService.SaveLayout(user.ID, map[string]interface{}{})
	assert.NoError(t, err)
	assert.Equal(t, 1.5, view.Layout["zoom"])
}
