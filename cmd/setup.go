package main

import (
	"context"
	"fmt"
	"os"

	"github.com/budde25/partydj/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the SQLite database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := shared.LoadConfig(configPath)
		if err != nil {
			return err
		}
		config = loaded
	}

	if config.Store.Backend == "redis" {
		r.logger.Info("redis backend needs no migrations")
		return nil
	}

	path := config.Store.SQLite.Path
	r.logger.Info("running migrations", "path", path)

	db, err := shared.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	r.writePlain("Database ready at %s\n", path)
	return nil
}

// InitConfig writes the example configuration to disk.
func (r *Runner) InitConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("Config written to %s\n", path)
	return nil
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize the room database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}

func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration helpers",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path",
						Value: "config.toml",
					},
				},
				Action: r.InitConfig,
			},
		},
	}
}
