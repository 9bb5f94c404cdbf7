// Command generator runs a background worker that posts LLM-generated
// content through the AInteract API. Unlike the templated agent it
// starts its loop immediately on boot.
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
	"github.com/gabacode/AInteract/internal/llm"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := apiclient.New(cfg.APIBaseURL, "generator", cfg.ServiceJWTSecret)
	gen := llm.NewGenerator(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	a := agent.New(api, agent.NewLLMSource(gen), cfg.AgentInterval())

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start generator: %v", err)
	}

	app := agent.NewControlApp(a)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down generator...")
		if a.Running() {
			if err := a.Stop(); err != nil {
				log.Printf("Generator stop error: %v", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Control server shutdown error: %v", err)
		}
	}()

	log.Printf("Generator control API listening on port %s...", cfg.AgentPort)
	log.Fatal(app.Listen(":" + cfg.AgentPort))
}
