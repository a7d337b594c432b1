package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"uninest-housing-api/internal/config"
	"uninest-housing-api/internal/database"
	"uninest-housing-api/internal/handler"
	"uninest-housing-api/internal/middleware"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	buildingRepo := repository.NewBuildingRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	residentRepo := repository.NewResidentRepo(db)
	maintenanceRepo := repository.NewMaintenanceRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, residentRepo, auditRepo)
	buildingService := service.NewBuildingService(buildingRepo, auditRepo)
	roomService := service.NewRoomService(db, roomRepo, auditRepo)
	residentService := service.NewResidentService(db, residentRepo, roomRepo, userRepo, auditRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, roomRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	buildingHandler := handler.NewBuildingHandler(buildingService)
	roomHandler := handler.NewRoomHandler(roomService)
	residentHandler := handler.NewResidentHandler(residentService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	studentHandler := handler.NewStudentHandler(residentService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "uninest-housing-api",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// API routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// Building CRUD (admin only)
		buildings := api.Group("/buildings", middleware.RequireAdministrator())
		{
			buildings.GET("", buildingHandler.ListBuildings)
			buildings.GET("/:id", buildingHandler.GetBuilding)
			buildings.POST("", buildingHandler.CreateBuilding)
			buildings.PUT("/:id", buildingHandler.UpdateBuilding)
			buildings.DELETE("/:id", buildingHandler.DeleteBuilding)
		}

		// Room CRUD (admin only)
		rooms := api.Group("/rooms", middleware.RequireAdministrator())
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
		}

		// Resident CRUD (admin only)
		residents := api.Group("/residents", middleware.RequireAdministrator())
		{
			residents.GET("", residentHandler.ListResidents)
			residents.GET("/:id", residentHandler.GetResident)
			residents.POST("", residentHandler.CreateResident)
			residents.PUT("/:id", residentHandler.UpdateResident)
			residents.POST("/:id/assign-room", residentHandler.AssignRoom)
			residents.DELETE("/:id", residentHandler.DeleteResident)
		}

		// Maintenance request CRUD (any authenticated role)
		maintenance := api.Group("/maintenance-requests")
		{
			maintenance.GET("", maintenanceHandler.ListRequests)
			maintenance.GET("/:id", maintenanceHandler.GetRequest)
			maintenance.POST("", maintenanceHandler.CreateRequest)
			maintenance.PUT("/:id", maintenanceHandler.UpdateRequest)
			maintenance.DELETE("/:id", maintenanceHandler.DeleteRequest)
		}

		// Student-scoped room lookup
		api.GET("/my-room", middleware.RequireStudent(), studentHandler.MyRoom)
	}

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
