package api

import (
	"github.com/urfave/cli/v2"

	"github.com/feedlint/feedlint/pkg/api/routes"
	"github.com/feedlint/feedlint/pkg/profile"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Provides the feed validation web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "profile",
						Usage: "path to a validation profile overriding the built-in one",
					},
				},
				Action: func(c *cli.Context) error {
					networkProfile := profile.Default()
					if profilePath := c.String("profile"); profilePath != "" {
						var err error
						networkProfile, err = profile.Load(profilePath)
						if err != nil {
							return err
						}
					}

					routes.UseProfile(networkProfile)

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
