package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/StudyForge/config"
	"github.com/lshigami/StudyForge/database"
	_ "github.com/lshigami/StudyForge/docs" // Swagger docs - auto-generated
	authctrl "github.com/lshigami/StudyForge/internal/controller/auth"
	quizctrl "github.com/lshigami/StudyForge/internal/controller/quiz"
	solvectrl "github.com/lshigami/StudyForge/internal/controller/solve"
	studyctrl "github.com/lshigami/StudyForge/internal/controller/study"
	"github.com/lshigami/StudyForge/internal/logger"
	"github.com/lshigami/StudyForge/internal/middleware"
	"github.com/lshigami/StudyForge/internal/model"
	"github.com/lshigami/StudyForge/internal/repository"
	"github.com/lshigami/StudyForge/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StudyForge API
// @version 1.0
// @description AI study assistant: syllabus, essays, code explanation, study plans, flashcards, quizzes with history, chat, Q&A and image-based problem solving.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewProfileRepository,
			repository.NewQuizAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGenAIClient,
			service.NewAuthService,
			service.NewStudyService,
			service.NewQuizService,
			service.NewSolveService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			studyctrl.NewStudyController,
			quizctrl.NewQuizController,
			solvectrl.NewSolveController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	studyCtrl *studyctrl.StudyController,
	quizCtrl *quizctrl.QuizController,
	solveCtrl *solvectrl.SolveController,
) {
	api := router.Group("/api/v1")

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.JWTAuth(cfg))
	{
		authed.GET("/profile", authCtrl.GetProfile)
		authed.PUT("/profile", authCtrl.UpdateProfile)

		studyGroup := authed.Group("/study")
		studyGroup.POST("/syllabus", studyCtrl.GenerateSyllabus)
		studyGroup.POST("/essay", studyCtrl.WriteEssay)
		studyGroup.POST("/explain-code", studyCtrl.ExplainCode)
		studyGroup.POST("/plan", studyCtrl.BuildStudyPlan)
		studyGroup.POST("/flashcards", studyCtrl.GenerateFlashcards)
		studyGroup.POST("/ask", studyCtrl.Ask)
		studyGroup.POST("/chat", studyCtrl.Chat)

		quizGroup := authed.Group("/quizzes")
		quizGroup.POST("/generate", quizCtrl.GenerateQuiz)
		quizGroup.POST("/submit", quizCtrl.SubmitQuiz)
		quizGroup.GET("/history", quizCtrl.GetHistory)

		solveGroup := authed.Group("/solve")
		solveGroup.POST("/upload", solveCtrl.SolveFromUpload)
		solveGroup.POST("/url", solveCtrl.SolveFromURL)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyForge API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
