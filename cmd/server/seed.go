package main

import (
	"fmt"
	"log"

	"github.com/hobbygardens/garden-tracker/internal/config"
	"github.com/hobbygardens/garden-tracker/internal/database"
	"github.com/hobbygardens/garden-tracker/internal/models"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/spf13/cobra"
)

// starterPlants is the initial shared catalog. Seeding is idempotent: plants
// already present by common name are skipped.
var starterPlants = []models.PlantType{
	{
		CommonName:     "Tomato",
		ScientificName: "Solanum lycopersicum",
		RotationFamily: "Nightshade",
		Description:    "Popular fruiting vegetable, typically grown as an annual.",
	},
	{
		CommonName:     "Carrot",
		ScientificName: "Daucus carota",
		RotationFamily: "Root Vegetable",
		Description:    "Root vegetable, usually orange in color.",
	},
	{
		CommonName:     "Bush Bean",
		ScientificName: "Phaseolus vulgaris",
		RotationFamily: "Legume",
		Description:    "Nitrogen-fixing legume, relatively easy to grow.",
	},
	{
		CommonName:     "Broccoli",
		ScientificName: "Brassica oleracea var. italica",
		RotationFamily: "Brassica",
		Description:    "Cool-season crop grown for its flowering head.",
	},
	{
		CommonName:     "Lettuce",
		ScientificName: "Lactuca sativa",
		RotationFamily: "Leafy Green",
		Description:    "Leafy vegetable, commonly used in salads.",
	},
	{
		CommonName:     "Cucumber",
		ScientificName: "Cucumis sativus",
		RotationFamily: "Cucurbit",
		Description:    "Vining plant producing cylindrical fruits.",
	},
	{
		CommonName:     "Onion",
		ScientificName: "Allium cepa",
		RotationFamily: "Allium",
		Description:    "Widely cultivated bulb vegetable.",
	},
	{
		CommonName:     "Potato",
		ScientificName: "Solanum tuberosum",
		RotationFamily: "Nightshade",
		Description:    "Starchy tuber crop, related to tomatoes.",
	},
	{
		CommonName:     "Spinach",
		ScientificName: "Spinacia oleracea",
		RotationFamily: "Leafy Green",
		Description:    "Nutrient-rich leafy green vegetable.",
	},
	{
		CommonName:     "Bell Pepper",
		ScientificName: "Capsicum annuum",
		RotationFamily: "Nightshade",
		Description:    "Sweet pepper variety, fruit vegetable.",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter plant catalog",
	Long: `Load the starter plant catalog into the database.

Plant types are matched by common name; entries that already exist are
left untouched, so the command is safe to run more than once.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	plantRepo := repository.NewPlantTypeRepository(db)

	added := 0
	skipped := 0
	for i := range starterPlants {
		plant := starterPlants[i]
		existing, err := plantRepo.FindByCommonName(plant.CommonName)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", plant.CommonName, err)
		}
		if existing != nil {
			skipped++
			continue
		}
		if err := plantRepo.Create(&plant); err != nil {
			return fmt.Errorf("failed to add %s: %w", plant.CommonName, err)
		}
		log.Printf("Added %s", plant.CommonName)
		added++
	}

	log.Printf("Seeding complete: %d added, %d already present", added, skipped)
	return nil
}
