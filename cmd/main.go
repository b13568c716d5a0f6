package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	_ "scene-service/docs"
	"scene-service/internal/config"
	"scene-service/internal/handlers"
	"scene-service/internal/logging"
	"scene-service/internal/repository"
	"scene-service/internal/services"
	"scene-service/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var (
	flagEnvFile string
	flagPort    int
)

var rootCmd = &cobra.Command{
	Use:           "scene-service",
	Short:         "Persistence API for the 3D scene editor",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "listen port, overrides PORT")
	rootCmd.AddCommand(versionCmd, migrateCmd)
}

// @title Astris 3D Scene API
// @version 1.0.0
// @description Persistence API for shapes, projects, gesture telemetry and scene snapshots.
// @BasePath /api
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("scene-service exited")
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := InitConfig()
	if flagPort != 0 {
		cfg.Server.Port = flagPort
	}

	db := ConnectDatabase(cfg)
	defer CloseDatabase(db)
	MigrateDatabase(db)

	shapeRepo := repository.NewShapeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	gestureRepo := repository.NewGestureRepository(db)
	statusRepo := repository.NewStatusCheckRepository(db)

	shapeService := services.NewShapeService(shapeRepo)
	h := handlers.Handlers{
		Shapes:   handlers.NewShapeHandler(shapeService),
		Projects: handlers.NewProjectHandler(services.NewProjectService(projectRepo)),
		Gestures: handlers.NewGestureHandler(services.NewGestureService(gestureRepo)),
		Scene:    handlers.NewSceneHandler(shapeService),
		System: handlers.NewSystemHandler(
			services.NewStatusService(statusRepo),
			services.NewAnalyticsService(shapeRepo, projectRepo, gestureRepo),
		),
	}
	if store := InitSnapshotStore(ctx, cfg); store != nil {
		h.Snapshots = handlers.NewSnapshotHandler(services.NewSnapshotService(shapeService, store))
	} else {
		log.Info().Msg("minio not configured, scene snapshots disabled")
	}

	app := handlers.NewApp(cfg.Server.CORSOrigins)
	handlers.RegisterRoutes(app, cfg.Server.Prefix, h)
	logRoutes(app)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("server listening")
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func logRoutes(app *fiber.App) {
	for _, r := range app.GetRoutes(true) {
		log.Debug().Str("method", r.Method).Str("path", r.Path).Msg("route registered")
	}
}

func InitConfig() *config.Config {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to database")
	return db
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("closing database")
	}
}

func MigrateDatabase(db *gorm.DB) {
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
}

// InitSnapshotStore returns nil when MinIO is not configured.
func InitSnapshotStore(ctx context.Context, cfg *config.Config) storage.ObjectStore {
	if !cfg.Minio.Enabled() {
		return nil
	}
	client, err := storage.NewMinioClient(ctx, cfg.Minio)
	if err != nil {
		log.Fatal().Err(err).Msg("minio client initialization failed")
	}
	return storage.NewMinioStore(client, cfg.Minio.Bucket)
}
