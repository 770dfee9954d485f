package validator

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "validator",
		Usage: "Validate GTFS feeds against the network rule catalogue",
		Subcommands: []*cli.Command{
			{
				Name:  "check",
				Usage: "validate a zipped feed and print the report",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feed",
						Usage:    "path to the zipped feed archive",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "profile",
						Usage: "path to a validation profile overriding the built-in one",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the report as JSON instead of text",
					},
				},
				Action: func(c *cli.Context) error {
					networkProfile := profile.Default()
					if profilePath := c.String("profile"); profilePath != "" {
						var err error
						networkProfile, err = profile.Load(profilePath)
						if err != nil {
							log.Fatal().Err(err).Msg("Failed to load validation profile")
						}
					}

					archive, err := os.Open(c.String("feed"))
					if err != nil {
						return err
					}
					defer archive.Close()

					loadedFeed, err := feed.LoadZip(archive)
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to load feed archive")
					}

					results := Run(loadedFeed, networkProfile)

					if c.Bool("json") {
						encoder := json.NewEncoder(os.Stdout)
						encoder.SetIndent("", "  ")
						if err := encoder.Encode(results); err != nil {
							return err
						}
					} else {
						RenderText(os.Stdout, results)
					}

					if HasErrors(results) {
						return cli.Exit("", 1)
					}

					return nil
				},
			},
		},
	}
}
