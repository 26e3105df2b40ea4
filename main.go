package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	amqp "github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"resto/internal/handlers"
	"resto/internal/repositories"
	"resto/internal/services"
	"resto/internal/validation"
	"resto/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "resto")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	// --- Logger ---
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// --- Store connection ---
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(viper.GetString("MONGO_URI")))
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Fatalw("failed to ping MongoDB", "error", err)
	}
	db := client.Database(viper.GetString("MONGO_DB"))
	logger.Infow("connected to MongoDB", "database", db.Name())

	// --- Event publisher (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url}, logger)
		if err != nil {
			logger.Fatalw("failed to initialize RabbitMQ client", "error", err)
		}
		events = mqClient

		// Consume our own catalog events so downstream processing has a home;
		// for now each event is acknowledged after being logged.
		if err := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
			logger.Infow("catalog event received", "routingKey", msg.RoutingKey, "body", string(msg.Body))
			return nil
		}); err != nil {
			logger.Warnw("failed to start catalog event consumer", "error", err)
		}
	} else {
		logger.Info("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Repositories, services, handlers ---
	validate := validation.New()
	restaurantRepo := repositories.NewMongoRestaurantRepository(db)
	menuRepo := repositories.NewMongoMenuRepository(db)

	restaurantService := services.NewRestaurantService(restaurantRepo, validate, events, logger)
	menuService := services.NewMenuService(menuRepo, validate, events, logger)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, logger)
	menuHandler := handlers.NewMenuHandler(menuService, logger)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, this is your restaurant directory server!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")
	restaurantHandler.RegisterRoutes(api)
	menuHandler.RegisterRoutes(api)

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	appPort := viper.GetString("APP_PORT")
	go func() {
		if err := app.Listen(appPort); err != nil {
			logger.Fatalw("server failed to start", "error", err)
		}
	}()
	logger.Infow("server started", "port", appPort)

	<-quit
	logger.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		logger.Errorw("error during server shutdown", "error", err)
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Errorw("error during MongoDB disconnect", "error", err)
	}

	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			logger.Errorw("error during RabbitMQ close", "error", err)
		}
	}

	logger.Info("server gracefully stopped")
}
