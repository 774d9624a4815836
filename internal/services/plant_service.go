package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
)

var (
	ErrPlantTypeNotFound  = errors.New("plant type not found")
	ErrDuplicatePlantType = errors.New("plant type with this common name already exists")
)

type PlantTypeInput struct {
	CommonName     string
	ScientificName string
	Description    string
	AvgHeight      *float64
	AvgSpread      *float64
	RotationFamily string
	Notes          string
}

type CSVImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

type RecommendationResult struct {
	LastPlantedFamily string             `json:"last_planted_family"`
	Recommendations   []models.PlantType `json:"recommendations"`
}

type PlantService struct {
	plantRepo    *repository.PlantTypeRepository
	bedRepo      *repository.BedRepository
	plantingRepo *repository.PlantingRepository
}

func NewPlantService(plantRepo *repository.PlantTypeRepository, bedRepo *repository.BedRepository, plantingRepo *repository.PlantingRepository) *PlantService {
	return &PlantService{
		plantRepo:    plantRepo,
		bedRepo:      bedRepo,
		plantingRepo: plantingRepo,
	}
}

func (s *PlantService) ListPlantTypes() ([]models.PlantType, error) {
	return s.plantRepo.FindAll()
}

func (s *PlantService) GetPlantType(id uint) (*models.PlantType, error) {
	plant, err := s.plantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantTypeNotFound
	}
	return plant, nil
}

func (s *PlantService) CreatePlantType(input PlantTypeInput) (*models.PlantType, error) {
	existing, err := s.plantRepo.FindByCommonName(input.CommonName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePlantType
	}

	plant := &models.PlantType{
		CommonName:     input.CommonName,
		ScientificName: input.ScientificName,
		Description:    input.Description,
		AvgHeight:      input.AvgHeight,
		AvgSpread:      input.AvgSpread,
		RotationFamily: input.RotationFamily,
		Notes:          input.Notes,
	}
	if err := s.plantRepo.Create(plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// ImportCSV reads a plant catalog with a header row. Rows missing
// common_name or scientific_name are reported, rows matching an existing
// common name are skipped, everything else is added.
func (s *PlantService) ImportCSV(r io.Reader) (*CSVImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	result := &CSVImportResult{Errors: []string{}}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		commonName := field("common_name")
		scientificName := field("scientific_name")
		if commonName == "" || scientificName == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing required fields.", line))
			continue
		}

		existing, err := s.plantRepo.FindByCommonName(commonName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		plant := &models.PlantType{
			CommonName:     commonName,
			ScientificName: scientificName,
			RotationFamily: field("rotation_family"),
			Description:    field("description"),
			Notes:          field("notes"),
		}
		if h := field("avg_height"); h != "" {
			if v, err := strconv.ParseFloat(h, 64); err == nil {
				plant.AvgHeight = &v
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid avg_height %q", line, h))
				continue
			}
		}
		if sp := field("avg_spread"); sp != "" {
			if v, err := strconv.ParseFloat(sp, 64); err == nil {
				plant.AvgSpread = &v
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid avg_spread %q", line, sp))
				continue
			}
		}

		if err := s.plantRepo.Create(plant); err != nil {
			return nil, err
		}
		result.Added++
	}

	return result, nil
}

// Recommend returns plant types outside the rotation family of the bed's most
// recent planting. A bed with no history gets the whole catalog.
func (s *PlantService) Recommend(userID, bedID uint) (*RecommendationResult, error) {
	bed, err := s.bedRepo.FindByIDAndUser(bedID, userID)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	lastFamily := ""
	mostRecent, err := s.plantingRepo.FindMostRecentByBed(bedID)
	if err != nil {
		return nil, err
	}
	if mostRecent != nil {
		lastFamily = mostRecent.PlantType.RotationFamily
	}

	plants, err := s.plantRepo.FindExcludingFamily(lastFamily)
	if err != nil {
		return nil, err
	}

	return &RecommendationResult{
		LastPlantedFamily: lastFamily,
		Recommendations:   plants,
	}, nil
}
