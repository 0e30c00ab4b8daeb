package main

import (
	"email-dataset/config"
	"email-dataset/database"
	"email-dataset/importer"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "dataset-import",
		Usage: "load .eml files into an email dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dataset",
				Aliases: []string{"d"},
				Usage:   "path of the sqlite dataset",
				Value:   config.AppConfig.DatasetPath,
			},
			&cli.StringFlag{
				Name:     "dir",
				Usage:    "directory searched recursively for .eml files",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			db, err := database.New(c.String("dataset"))
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.EnsureSchema(); err != nil {
				return err
			}

			repo := database.NewEmailRepository(db, logger)
			result, err := importer.New(repo, logger).ImportDir(c.Context, c.String("dir"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "imported %d, skipped %d, failed %d, linked %d replies\n",
				result.Imported, result.Skipped, result.Failed, result.Linked)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}
