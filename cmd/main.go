package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/database"
	_ "github.com/lshigami/Surveyor/docs" // Swagger docs - generated by swag init
	adminctrl "github.com/lshigami/Surveyor/internal/controller/admin"
	userctrl "github.com/lshigami/Surveyor/internal/controller/user"
	"github.com/lshigami/Surveyor/internal/logger"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Surveyor API
// @version 1.0
// @description API for building surveys, collecting completions and summarizing answers.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewCompletionRepository,
			repository.NewInvitationRepository,
			repository.NewUnsubscribeRepository,
			repository.NewMessageRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewLogMailer,
			service.NewNotificationService,
			service.NewScoreConverterService,
			service.NewUserService,
			service.NewSurveyService,
			service.NewQuestionService,
			service.NewCompletionService,
			service.NewInvitationService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewSurveyAdminController,
			userctrl.NewSurveyController,
			userctrl.NewAccountController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts every API route under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	adminCtrl *adminctrl.SurveyAdminController,
	surveyCtrl *userctrl.SurveyController,
	accountCtrl *userctrl.AccountController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/users", accountCtrl.CreateUser)
		api.GET("/users/:user_id/messages", accountCtrl.GetMessages)
		api.POST("/unsubscribes", accountCtrl.Unsubscribe)

		api.GET("/surveys", surveyCtrl.GetAllSurveys)
		api.POST("/surveys", adminCtrl.CreateSurvey)
		api.GET("/surveys/:survey_id", surveyCtrl.GetSurveyDetails)
		api.POST("/surveys/:survey_id/questions", adminCtrl.AddQuestion)
		api.POST("/surveys/:survey_id/invitations", adminCtrl.InviteToSurvey)

		// Completions and summaries
		api.POST("/surveys/:survey_id/completions", surveyCtrl.CompleteSurvey)
		api.GET("/surveys/:survey_id/completions", surveyCtrl.GetSurveyCompletions)
		api.GET("/completions/:completion_id", surveyCtrl.GetCompletionDetails)
		api.GET("/surveys/:survey_id/summaries/:summarizer", surveyCtrl.GetSummaries)

		questions := api.Group("/questions/:question_id")
		questions.GET("", adminCtrl.GetQuestion)
		questions.PUT("", adminCtrl.UpdateQuestion)
		questions.POST("/options", adminCtrl.AddOption)
		questions.GET("/types/new", adminCtrl.NewQuestionType)
		questions.POST("/types", adminCtrl.SwitchQuestionType)
	}
}

// StartServer manages the HTTP server lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Surveyor API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
