// @title Gantavya Registration API
// @version 1.0
// @description Event catalog and team registration backend for the Gantavya fest.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "gantavya-backend/docs"

	"gantavya-backend/bootstrap"
	"gantavya-backend/config"
	"gantavya-backend/database"
	"gantavya-backend/internal/draft"
	"gantavya-backend/internal/routes"
	"gantavya-backend/internal/services"
	"gantavya-backend/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer database.DisconnectMongo(client)

	if err := bootstrap.EnsureRegistrationIndexes(database.DB); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	drafts := draft.NewMongoStore()
	saver := draft.NewDebouncer(drafts, draft.DefaultDelay, cfg.RequestTimeout)
	defer saver.FlushAll()

	uploads := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	mail := services.NewMailer(cfg)

	pipeline := &services.SubmissionPipeline{
		Store:   services.MongoRegistrationStore{},
		Uploads: uploads,
		Mail:    mail,
		Drafts:  drafts,
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024, // headroom over the 2MB ID proof cap
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.SetupRoutes(app, routes.Deps{
		Timeout:    cfg.RequestTimeout,
		JWTSecret:  cfg.JWTSecret,
		Drafts:     drafts,
		DraftSaver: saver,
		Uploads:    uploads,
		Mail:       mail,
		Pipeline:   pipeline,
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
