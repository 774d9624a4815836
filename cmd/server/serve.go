package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hobbygardens/garden-tracker/internal/config"
	"github.com/hobbygardens/garden-tracker/internal/database"
	"github.com/hobbygardens/garden-tracker/internal/handlers"
	"github.com/hobbygardens/garden-tracker/internal/middleware"
	"github.com/hobbygardens/garden-tracker/internal/repository"
	"github.com/hobbygardens/garden-tracker/internal/services"
	"github.com/spf13/cobra"

	_ "github.com/hobbygardens/garden-tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Garden Tracker API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	plantRepo := repository.NewPlantTypeRepository(db)
	bedRepo := repository.NewBedRepository(db)
	plantingRepo := repository.NewPlantingRepository(db)
	layoutRepo := repository.NewLayoutRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	bedService := services.NewBedService(bedRepo)
	plantService := services.NewPlantService(plantRepo, bedRepo, plantingRepo)
	plantingService := services.NewPlantingService(plantingRepo, bedRepo, plantRepo)
	layoutService := services.NewLayoutService(layoutRepo)
	exportService := services.NewExportService(userRepo, plantRepo, bedRepo, plantingRepo, layoutRepo)
	importService := services.NewImportService(db, userRepo, plantRepo, bedRepo, plantingRepo, layoutRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	authHandler := handlers.NewAuthHandler(authService)
	bedHandler := handlers.NewBedHandler(bedService)
	plantHandler := handlers.NewPlantHandler(plantService)
	plantingHandler := handlers.NewPlantingHandler(plantingService)
	layoutHandler := handlers.NewLayoutHandler(layoutService)
	dataHandler := handlers.NewDataHandler(exportService, importService)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	swaggerUI := handlers.SwaggerUIWithBearerFix()
	swaggerSpec := ginSwagger.WrapHandler(swaggerFiles.Handler)
	router.GET("/swagger/*any", func(c *gin.Context) {
		switch c.Param("any") {
		case "/", "/index.html":
			swaggerUI(c)
		default:
			swaggerSpec(c)
		}
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/plants", plantHandler.ListPlantTypes)
		api.GET("/plants/:id", plantHandler.GetPlantType)

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/auth/me", authHandler.Me)

			authenticated.POST("/plants", plantHandler.CreatePlantType)
			authenticated.POST("/plants/import", plantHandler.ImportPlantsCSV)

			authenticated.GET("/garden-beds", bedHandler.ListBeds)
			authenticated.POST("/garden-beds", bedHandler.CreateBed)
			authenticated.GET("/garden-beds/:id", bedHandler.GetBed)
			authenticated.PUT("/garden-beds/:id", bedHandler.UpdateBed)
			authenticated.DELETE("/garden-beds/:id", bedHandler.DeleteBed)
			authenticated.GET("/garden-beds/:id/plantings", plantingHandler.ListPlantings)
			authenticated.POST("/garden-beds/:id/plantings", plantingHandler.CreatePlanting)
			authenticated.GET("/garden-beds/:id/recommendations", plantHandler.Recommendations)

			authenticated.PUT("/plantings/:id", plantingHandler.UpdatePlanting)
			authenticated.DELETE("/plantings/:id", plantingHandler.DeletePlanting)

			authenticated.GET("/layout", layoutHandler.GetLayout)
			authenticated.POST("/layout", layoutHandler.SaveLayout)

			authenticated.GET("/data/export", dataHandler.ExportData)
			authenticated.POST("/data/import", dataHandler.ImportData)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Garden Tracker server on %s", addr)
	return router.Run(addr)
}
