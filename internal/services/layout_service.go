package services

import (
	"encoding/json"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
)

// LayoutView is the decoded form of a stored layout.
type LayoutView struct {
	ID           uint                   `json:"id"`
	UserID       uint                   `json:"user_id"`
	Layout       map[string]interface{} `json:"layout"`
	LastModified string                 `json:"last_modified"`
}

type LayoutService struct {
	layoutRepo *repository.LayoutRepository
}

func NewLayoutService(layoutRepo *repository.LayoutRepository) *LayoutService {
	return &LayoutService{layoutRepo: layoutRepo}
}

// GetLayout returns nil when the user has not stored a layout yet.
func (s *LayoutService) GetLayout(userID uint) (*LayoutView, error) {
	layout, err := s.layoutRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, nil
	}
	return viewOf(layout), nil
}

// SaveLayout stores the document verbatim for a first save. On later saves it
// merges shallowly: keys present in incoming overwrite or extend the stored
// document, absent keys keep their stored values, and nested objects under a
// shared key are replaced whole.
func (s *LayoutService) SaveLayout(userID uint, incoming map[string]interface{}) (*LayoutView, error) {
	existing, err := s.layoutRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		data, err := json.Marshal(incoming)
		if err != nil {
			return nil, err
		}
		layout := &models.GardenLayout{
			UserID:     userID,
			LayoutJSON: string(data),
		}
		if err := s.layoutRepo.Create(layout); err != nil {
			return nil, err
		}
		return viewOf(layout), nil
	}

	merged := map[string]interface{}{}
	if err := json.Unmarshal([]byte(existing.LayoutJSON), &merged); err != nil {
		// A corrupt stored document is replaced rather than surfaced.
		merged = map[string]interface{}{}
	}
	for key, value := range incoming {
		merged[key] = value
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	existing.LayoutJSON = string(data)
	if err := s.layoutRepo.Update(existing); err != nil {
		return nil, err
	}
	return viewOf(existing), nil
}

func viewOf(layout *models.GardenLayout) *LayoutView {
	doc := map[string]interface{}{}
	json.Unmarshal([]byte(layout.LayoutJSON), &doc)
	return &LayoutView{
		ID:           layout.ID,
		UserID:       layout.UserID,
		Layout:       doc,
		LastModified: layout.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
