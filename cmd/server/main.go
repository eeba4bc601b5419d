package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"docshelf_app_echo/internal/handlers"
	"docshelf_app_echo/internal/loader"
	appMiddleware "docshelf_app_echo/internal/middleware"
	"docshelf_app_echo/internal/notif"
	"docshelf_app_echo/internal/services"
	"docshelf_app_echo/internal/viewstate"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	authClient, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	var db *gorm.DB
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err = services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migration
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional: without it user lookups skip the cache and index
	// events stay in-process.
	var cache *services.RedisCache
	var events notif.Backend
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		events = notif.NewRedisBackend(cache.Client(), os.Getenv("NOTIF_CHANNEL"))
	} else {
		log.Println("Warning: REDIS_URL not set, using in-memory event queue")
		events = notif.NewMemoryBackend()
	}

	// Shared view state of the dual-pane browser
	state := viewstate.NewStore()

	// Services and the folder loader
	userService := services.NewUserService(db, cache)
	nodeService := services.NewNodeService(db, state, events)
	folderLoader := loader.New(userService, nodeService, state)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authClient, userService)
	inboxHandler := handlers.NewInboxHandler(folderLoader, state)
	nodeHandler := handlers.NewNodeHandler(nodeService, userService)
	tagHandler := handlers.NewTagHandler(db, userService)
	userHandler := handlers.NewUserHandler(userService)
	panelHandler := handlers.NewPanelHandler(state)

	// Public routes
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Protected routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireAuth(authClient))

	protected.GET("/inbox", inboxHandler.Inbox)
	protected.GET("/folders/:id", inboxHandler.OpenFolder)
	protected.GET("/folders/:id/breadcrumb", nodeHandler.GetBreadcrumb)

	protected.POST("/folders", nodeHandler.CreateFolder)
	protected.GET("/nodes/:id", nodeHandler.GetNode)
	protected.DELETE("/nodes/:id", nodeHandler.DeleteNode)
	protected.POST("/nodes/move", nodeHandler.MoveNodes)

	protected.GET("/tags", tagHandler.ListTags)
	protected.POST("/tags", tagHandler.CreateTag)
	protected.PATCH("/tags/:id", tagHandler.UpdateTag)
	protected.DELETE("/tags/:id", tagHandler.DeleteTag)

	protected.GET("/panels/:panel", panelHandler.GetPanel)
	protected.GET("/users/me", userHandler.Me)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
