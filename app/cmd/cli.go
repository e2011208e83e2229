package cmd

import (
	"context"
	"log"

	"github.com/Rakhulsr/go-joias/app/configs"
	"github.com/Rakhulsr/go-joias/app/db/seeders"
	"github.com/Rakhulsr/go-joias/app/models/migrations"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

// Serve starts the HTTP server with the loaded configuration.
type Serve func(ctx context.Context, db *gorm.DB) error

func NewCli(serve Serve) *cli.Command {
	return &cli.Command{
		Name:  "joias",
		Usage: "Jewelry catalog service",
		Action: func(ctx context.Context, c *cli.Command) error {
			db, err := configs.OpenConnection()
			if err != nil {
				return err
			}
			return serve(ctx, db)
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("migrate: migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert jewelry categories and sample products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db.WithContext(ctx)); err != nil {
						return err
					}
					log.Println("seed: seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("generate-keys: copy the keys to your .env file")
					return nil
				},
			},
		},
	}
}
