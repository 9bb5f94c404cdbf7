// Command agent runs a background worker that posts templated content
// through the AInteract API. It stays idle until started through its
// control endpoint.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabacode/AInteract/internal/agent"
	"github.com/gabacode/AInteract/internal/apiclient"
	"github.com/gabacode/AInteract/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := apiclient.New(cfg.APIBaseURL, "agent", cfg.ServiceJWTSecret)
	a := agent.New(api, agent.NewTemplateSource(), cfg.AgentInterval())

	app := agent.NewControlApp(a)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down agent...")
		if a.Running() {
			if err := a.Stop(); err != nil {
				log.Printf("Agent stop error: %v", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Control server shutdown error: %v", err)
		}
	}()

	log.Printf("Agent control API listening on port %s...", cfg.AgentPort)
	log.Fatal(app.Listen(":" + cfg.AgentPort))
}
