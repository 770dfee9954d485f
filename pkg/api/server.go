package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feedlint/feedlint/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New(fiber.Config{
		// Feed archives run to tens of megabytes.
		BodyLimit: 128 * 1024 * 1024,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/validator")

	group.Get("version", routes.APIVersion)

	routes.ValidatorRouter(group)

	return webApp.Listen(listen)
}
