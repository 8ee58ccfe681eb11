package main

import (
	"errors"
	"flag"
	"log"

	"github.com/pioneer-funding/server/internal/pkg/config"
	"github.com/pioneer-funding/server/internal/pkg/database"
)

func main() {
	configPath := flag.String("config", config.GetEnv("CONFIG_PATH", "config/api.env"), "path to the dotenv config file")
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	err := database.Migrate(database.BuildDSN(configs.Database), *direction)
	switch {
	case errors.Is(err, database.ErrNoChange):
		log.Println("Schema already up to date")
	case err != nil:
		log.Fatalf("Migration failed: %v", err)
	default:
		log.Printf("Migrations applied (%s)", *direction)
	}
}
