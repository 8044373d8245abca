package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-reconciler/core/config"
	"invoice-reconciler/core/database"
	"invoice-reconciler/core/loader"
	"invoice-reconciler/core/logger"
	"invoice-reconciler/core/middleware/auth"
	"invoice-reconciler/core/middleware/rayid"
	"invoice-reconciler/core/storage"

	"invoice-reconciler/feature/compare"
	comparemodels "invoice-reconciler/feature/compare/models"
	"invoice-reconciler/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "invoice-reconciler/docs/swagger"
)

// @title Invoice Reconciler API
// @version 1.0
// @description API for extracting and reconciling product records from PDF invoices.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the invoice reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Gemini.IsValidStrategy() {
			log.Fatalf("Invalid extraction strategy: %q", cfg.Gemini.Strategy)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, run history disabled", zap.Error(err))
			} else {
				db = conn
				if err := db.AutoMigrate(&comparemodels.CompareRun{}); err != nil {
					logg.Warn("Run history migration failed", zap.Error(err))
				}
				if err := database.VerifyColumns(db, comparemodels.CompareRun{}.TableName(),
					[]string{"id", "left_name", "right_name", "strategy", "created_at"}); err != nil {
					logg.Warn("Run history schema check failed", zap.Error(err))
				}
				logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Build the extraction pipeline
		extractor, closeExtractor, err := compare.NewExtractor(cmd.Context(), cfg.Gemini, logg)
		if err != nil {
			logg.Fatal("Failed to create extractor", zap.Error(err))
		}
		defer closeExtractor()

		lookupFeature := lookup.NewFeature(cfg.Lookup, logg)

		var history *compare.History
		if db != nil {
			history = compare.NewHistory(db)
		}
		compareSvc := compare.NewService(
			extractor,
			lookupFeature.Service(),
			store,
			cfg.Storage.Bucket,
			history,
			logg,
			time.Duration(cfg.Gemini.CallDelayMS)*time.Millisecond,
		)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(lookupFeature)
		mgr.Register(compare.NewFeature(compareSvc))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation and health probe (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("strategy", cfg.Gemini.Strategy))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
