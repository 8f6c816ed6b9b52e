package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationPath, databaseURL string
	var down bool
	flag.StringVar(&databaseURL, "database_url", "", "Postgres connection URL")
	flag.StringVar(&migrationPath, "migration-path", "./migrations", "Path to the migrations directory")
	flag.BoolVar(&down, "down", false, "Roll back all migrations")
	flag.Parse()

	if databaseURL == "" {
		panic("database URL is required")
	}
	if migrationPath == "" {
		panic("migrationPath is required")
	}
	if !strings.Contains(databaseURL, "://") {
		databaseURL = "postgres://" + databaseURL
	}

	m, err := migrate.New("file://"+migrationPath, databaseURL)
	if err != nil {
		panic(err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")

			return
		}

		panic(err)
	}

	fmt.Println("Migrations applied")
}
