package main

import (
	"log"
	"strings"

	"github.com/febarreras/agenda-escolar-api/internal/config"
	"github.com/febarreras/agenda-escolar-api/internal/constants"
	"github.com/febarreras/agenda-escolar-api/internal/database"
	"github.com/febarreras/agenda-escolar-api/internal/handlers"
	"github.com/febarreras/agenda-escolar-api/internal/middleware"
	"github.com/febarreras/agenda-escolar-api/internal/repository"
	"github.com/febarreras/agenda-escolar-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Schema and seed data must be in place before serving
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed demo users: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	corsConfig.AllowWildcard = true
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	noteRepo := repository.NewNoteRepository(database.GetDB())
	reminderRepo := repository.NewReminderRepository(database.GetDB())

	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewNoteHandler(noteRepo)
	reminderHandler := handlers.NewReminderHandler(reminderRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Agenda escolar API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

		// Tarea routes (protected)
		tareas := api.Group("/tareas")
		tareas.Use(middleware.RequireAuth())
		{
			tareas.GET("", taskHandler.ListTareas)
			tareas.POST("", taskHandler.CreateTarea)
			tareas.PUT("/:id", taskHandler.UpdateTarea)
			tareas.DELETE("/:id", taskHandler.DeleteTarea)
		}

		// Nota routes (protected)
		notas := api.Group("/notas")
		notas.Use(middleware.RequireAuth())
		{
			notas.GET("", noteHandler.ListNotas)
			notas.POST("", noteHandler.CreateNota)
			notas.PUT("/:id", noteHandler.UpdateNota)
			notas.DELETE("/:id", noteHandler.DeleteNota)
		}

		// Recordatorio routes (protected)
		recordatorios := api.Group("/recordatorios")
		recordatorios.Use(middleware.RequireAuth())
		{
			recordatorios.GET("", reminderHandler.ListRecordatorios)
			recordatorios.POST("", reminderHandler.CreateRecordatorio)
			recordatorios.PUT("/:id", reminderHandler.UpdateRecordatorio)
			recordatorios.DELETE("/:id", reminderHandler.DeleteRecordatorio)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
