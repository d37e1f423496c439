package main

import (
	"log"
	"os"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
	"github.com/OramaLabs/launchpad-program/internal/routes"
	"github.com/OramaLabs/launchpad-program/pkg/amm"
	"github.com/OramaLabs/launchpad-program/pkg/config"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// fanoutEmitter forwards settlement events to every configured sink.
type fanoutEmitter []business.Emitter

func (f fanoutEmitter) Emit(event string, payload interface{}) {
	for _, e := range f {
		e.Emit(event, payload)
	}
}

func main() {
	// Initialize database
	config.InitDB()

	// SQL migrations are opt-in; AutoMigrate covers development setups
	if os.Getenv("RUN_MIGRATIONS") != "" {
		config.ExecuteMigrations()
	}

	hub := handlers.NewEventHub()
	emitters := fanoutEmitter{hub}

	// Initialize RabbitMQ (optional, will log warning if not configured)
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		queueEmitter, err := config.NewQueueEmitter()
		if err != nil {
			log.Fatal("Failed to create queue emitter:", err)
		}
		defer queueEmitter.Close()
		emitters = append(emitters, queueEmitter)
		log.Println("RabbitMQ initialized successfully")
	} else {
		log.Println("RabbitMQ not configured, skipping initialization")
	}

	svc := business.NewService(
		config.DB,
		oracle.NewEd25519Verifier(),
		amm.NewSimulatedVenue(),
		emitters,
	)
	handlers.Init(svc)

	// Set up router
	r := routes.SetupRouter(hub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
