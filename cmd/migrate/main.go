package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/BIM-AvailabilityService/internal/config"
)

// Применение миграций схемы БД
//
//	go run ./cmd/migrate -direction up
//	go run ./cmd/migrate -direction down -steps 1
func main() {
	var (
		configPath = flag.String("config", "config.toml", "путь к конфигурационному файлу")
		direction  = flag.String("direction", "up", "направление миграции: up или down")
		steps      = flag.Int("steps", 0, "количество шагов (0 - все)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New(cfg.Database.MigrationsPath, cfg.Database.MigrationURL())
	if err != nil {
		fmt.Printf("Failed to initialize migrations: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	default:
		fmt.Printf("Unknown direction: %s\n", *direction)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		fmt.Printf("Failed to read migration version: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Migrations applied: version=%d, dirty=%t\n", version, dirty)
}
