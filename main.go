package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kxxnxr13/web-inmobiliaria/config"
	"github.com/kxxnxr13/web-inmobiliaria/handlers"
	"github.com/kxxnxr13/web-inmobiliaria/mailer"
	"github.com/kxxnxr13/web-inmobiliaria/routes"
	"github.com/kxxnxr13/web-inmobiliaria/storage"
	"github.com/kxxnxr13/web-inmobiliaria/store"
)

func main() {
	cfg := config.Load()

	var backend storage.KeyValue
	if cfg.Redis.Addr != "" {
		redisBackend, err := storage.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal(err)
		}
		defer redisBackend.Close()
		backend = redisBackend
		log.Println("Using Redis storage backend at", cfg.Redis.Addr)
	} else {
		backend = storage.NewMemory()
		log.Println("REDIS_ADDR not set, using in-memory storage backend")
	}

	properties := store.NewProperties(backend)
	amenities := store.NewAmenities(backend)
	admins, err := store.NewAdmins(backend, store.SuperAdmin{
		ID:       "1",
		Email:    cfg.Auth.SuperAdminEmail,
		Name:     cfg.Auth.SuperAdminName,
		Password: cfg.Auth.SuperAdminPassword,
	})
	if err != nil {
		log.Fatal(err)
	}

	var relay mailer.Relay
	if cfg.Mail.Driver == "sendgrid" {
		relay = mailer.NewSendGridRelay(cfg.Mail.SendgridAPIKey, cfg.Mail.From, cfg.Mail.To)
	} else {
		relay = mailer.NewHTTPRelay(cfg.Mail.RelayURL)
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	routes.RegisterRoutes(
		e,
		handlers.NewPropertyController(properties),
		handlers.NewAuthController(admins, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry),
		handlers.NewAmenityController(amenities),
		handlers.NewContactController(relay),
		cfg.Auth.JWTSecret,
	)

	log.Fatal(e.Start(":" + cfg.Port))
}
