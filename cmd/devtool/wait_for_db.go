package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	attempts := fs.Int("attempts", 30, "Maximum connection attempts")
	interval := fs.Duration("interval", 2*time.Second, "Delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 1; i <= *attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), *interval)
		pool, err := database.NewPool(ctx, databaseURL(), 1, time.Minute, time.Minute)
		cancel()
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i, *attempts, err)
		time.Sleep(*interval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", *attempts, lastErr)
}
