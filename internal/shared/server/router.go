package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docassist-backend/internal/chat"
	"docassist-backend/internal/documents"
	"docassist-backend/internal/llm"
	"docassist-backend/internal/llm/openai"
	"docassist-backend/internal/questions"
	"docassist-backend/internal/shared/config"
	"docassist-backend/internal/shared/server/middleware"
	"docassist-backend/internal/shared/server/respond"
	"docassist-backend/internal/shared/storage/db"
	"docassist-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.Repo
	var userRepo users.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	llmClient := llm.Retry(openai.New(llm.Config{APIKey: cfg.LLMAPIKey, Model: cfg.LLMModel}))

	docSvc := &documents.Service{Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)
	userSvc := &users.Service{Repo: userRepo}
	userHandler := users.NewHandler(userSvc)
	questionSvc := &questions.Service{Docs: docSvc, LLM: llmClient}
	questionHandler := questions.NewHandler(questionSvc)
	chatSvc := &chat.Service{Docs: docSvc, LLM: llmClient}
	chatHandler := chat.NewHandler(chatSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	protected := api.Group("")
	protected.Use(middleware.Auth())
	userHandler.RegisterRoutes(protected)
	docHandler.RegisterRoutes(protected)
	questionHandler.RegisterRoutes(protected)
	chatHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
