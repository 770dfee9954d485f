package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
	"github.com/feedlint/feedlint/pkg/validator"
)

var networkProfile = profile.Default()

// UseProfile swaps the validation profile served by the API.
func UseProfile(p *profile.Profile) {
	networkProfile = p
}

func ValidatorRouter(router fiber.Router) {
	router.Get("/rules", listRules)
	router.Post("/feed", validateFeed)
}

func listRules(c *fiber.Ctx) error {
	return c.JSON(validator.Catalogue())
}

func validateFeed(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("feed")
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A zipped feed must be uploaded in the 'feed' form field",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not read the uploaded archive",
		})
	}
	defer file.Close()

	loadedFeed, err := feed.LoadZip(file)
	if err != nil {
		c.SendStatus(fiber.StatusUnprocessableEntity)
		return c.JSON(fiber.Map{
			"error": "Could not parse the uploaded archive as a feed",
		})
	}

	return c.JSON(validator.Run(loadedFeed, networkProfile))
}
