package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
)

const migrateTimeout = 2 * time.Minute

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage the service's database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, databaseURL(), 2, time.Minute, time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		PrintHeader("Rolling back latest migration")
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Rolled back")
	case "status":
		PrintHeader("Migration status")
		states, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		for _, st := range states {
			if st.Applied {
				PrintSuccess("%05d %s", st.Version, st.Source)
			} else {
				PrintWarning("%05d %s (pending)", st.Version, st.Source)
			}
		}
	default:
		return fmt.Errorf("unknown migrate subcommand %q", args[0])
	}
	return nil
}
