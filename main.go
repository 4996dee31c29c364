package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"skillprep/api"
	"skillprep/internal/config"
	"skillprep/internal/container"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	if err := appContainer.Init(); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	if err := appContainer.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	server := api.NewServer(appContainer)

	var group errgroup.Group
	group.Go(func() error {
		log.Printf("Starting skillprep API server on port %s", appConfig.Server.Port)
		return server.Start(":" + appConfig.Server.Port)
	})

	if appConfig.Profiling.Enabled {
		group.Go(func() error {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			return http.ListenAndServe(":"+appConfig.Profiling.Port, nil)
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatal(err)
	}
}
