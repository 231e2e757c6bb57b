package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "medicare/docs"
	"medicare/internal/auth"
	"medicare/internal/config"
	"medicare/internal/handlers"
	"medicare/internal/logging"
	"medicare/internal/queue"
	"medicare/internal/storage"
	"medicare/internal/tasks"
)

// @Title						MediCare clinic API
// @Version					1.0
// @Description				Appointments, doctor queues, prescriptions and tele-consultations
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "medicare",
		Short: "MediCare clinic API server",
	}

	var envFile string
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an env file merged into the environment")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(migrateCmd(&envFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, cfg.IsDev())

			db, err := storage.ConnectDatabase(cfg, logger)
			if err != nil {
				return err
			}
			if err := storage.Migrate(db); err != nil {
				return err
			}
			fmt.Println("Migrations applied successfully.")
			return nil
		},
	}
}

func runServer(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.IsDev())

	db, err := storage.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := storage.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	redisClient := storage.InitRedis(cfg)
	if redisClient != nil {
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, responses will not be cached")
		} else {
			logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
		}
		defer redisClient.Close()
	}

	store := storage.NewStore(db)

	var queueOpts []queue.Option
	if cfg.SeedSampleQueue {
		queueOpts = append(queueOpts, queue.WithSeed(queue.SampleEntries))
	}
	registry := queue.NewRegistry(storage.NewQueueRepository(db), logger, queueOpts...)

	scheduler := tasks.NewScheduler(registry, store, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := handlers.New(store, registry, storage.NewCache(redisClient), auth.NewTokenIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret), logger)
	h.Mount(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	<-scheduler.Stop().Done()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
