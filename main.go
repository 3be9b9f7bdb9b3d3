package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/careercompass/backend/auth"
	"github.com/careercompass/backend/config"
	_ "github.com/careercompass/backend/docs"
	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/gemini"
	"github.com/careercompass/backend/handlers"
	"github.com/careercompass/backend/mcp"
	"github.com/careercompass/backend/storage"
	"github.com/careercompass/backend/tools"
	"github.com/careercompass/backend/utils"
)

// @title Career Compass API
// @version 1.0
// @description Resume and job description matching backend with AI analysis, career chat and analysis history.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@careercompass.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	store := openStore(ctx, cfg)
	defer store.Close()

	provider, closeProvider := openProvider(ctx, cfg)
	defer closeProvider()

	gw := gateway.New(provider, gateway.WithTimeouts(cfg.AnalyzeTimeout, cfg.ChatTimeout))

	// Resume archiving is optional
	var archiver storage.Archiver
	if cfg.ResumeBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Printf("Cloud Storage unavailable, resume archiving disabled: %v", err)
		} else {
			defer storageClient.Close()
			archiver = storageClient
			log.Println("Cloud Storage client initialized successfully")
		}
	}

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewAnalyzeMatchTool(gw, store))
	toolRegistry.Register(tools.NewCareerChatTool(gw, store))

	routes := handlers.Routes{
		JWT:      jwtService,
		Auth:     handlers.NewAuthHandler(store, jwtService, googleAuthService),
		Analysis: handlers.NewAnalysisHandler(gw, store, cfg.HistoryLimit),
		Resume:   handlers.NewResumeHandler(utils.NewDocumentExtractor(), archiver, cfg.MaxUploadBytes),
		MCP:      mcp.NewServer(toolRegistry),
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck(store.Name(), cfg.ProviderMode))
	routes.Register(router.Group("/api/v1"))

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s (store=%s, provider=%s)...", cfg.Port, store.Name(), cfg.ProviderMode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// openStore connects the configured document store. The server keeps running
// without persistence when the store cannot be reached.
func openStore(ctx context.Context, cfg *config.Config) storage.Store {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Println("Using in-memory store")
		return storage.NewMemoryStore()
	case config.StoreNone:
		log.Println("Persistence disabled, analyses will not be saved")
		return storage.Unavailable{}
	}

	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Printf("Firestore unavailable, analyses will not be saved: %v", err)
		return storage.Unavailable{}
	}
	log.Println("Firestore client initialized successfully")
	return firestoreClient
}

// openProvider builds the AI provider for the configured mode. A nil provider
// sends every call down the fallback path.
func openProvider(ctx context.Context, cfg *config.Config) (gateway.Provider, func()) {
	if cfg.ProviderMode != config.ProviderModeGemini {
		log.Printf("Using AI service at %s", cfg.AIServiceURL)
		return gateway.NewHTTPProvider(cfg.AIServiceURL), func() {}
	}

	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Printf("Gemini unavailable, using fallback responses: %v", err)
		return nil, func() {}
	}
	log.Println("Gemini client initialized successfully")
	return geminiClient, func() { geminiClient.Close() }
}
