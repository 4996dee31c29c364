package main

import (
	"log"

	"github.com/joho/godotenv"

	"skillprep/domain/bank"
	"skillprep/internal/config"
	"skillprep/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := ui.NewApp(ui.Config{Port: appConfig.Server.UIPort}, bank.NewSeeded())
	if err != nil {
		log.Fatal("Failed to create dashboard app:", err)
	}

	log.Printf("Starting question bank dashboard on http://localhost:%s", appConfig.Server.UIPort)
	log.Fatal(app.Start())
}
