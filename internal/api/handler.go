package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atknatk/parser-api/internal/extractor"
	"github.com/atknatk/parser-api/pkg/logger"
)

type ExtractHTMLRequest struct {
	HTML     string `json:"html"`
	Selector string `json:"selector"`
}

type ExtractFixtureRequest struct {
	HTML          string `json:"html"`
	Selector      string `json:"selector"`
	LabelSelector string `json:"labelSelector"`
}

type ExtractPageRequest struct {
	HTML string `json:"html"`
}

type Handler struct {
	matchTimezone string
}

func SetupRoutes(app *fiber.App, matchTimezone string) {
	h := &Handler{matchTimezone: matchTimezone}

	app.Get("/health", handleHealth)
	app.Post("/html-parser", h.handleExtractHTML)
	app.Post("/transfermarkt/extract-fiksture-matches", h.handleExtractFixtures)
	app.Post("/transfermarkt/extract-matches", h.handleExtractMatch)
	app.Post("/transfermarkt/extract-team", h.handleExtractTeam)
	app.Post("/transfermarkt/extract-player", h.handleExtractPlayer)
}

func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) handleExtractHTML(c *fiber.Ctx) error {
	var req ExtractHTMLRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.HTML == "" || req.Selector == "" {
		return badRequest(c, `Both "html" and "selector" fields are required.`)
	}

	matches, err := extractor.ExtractHTML(req.HTML, req.Selector)
	if err != nil {
		return extractionError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *Handler) handleExtractFixtures(c *fiber.Ctx) error {
	var req ExtractFixtureRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.HTML == "" || req.Selector == "" {
		return badRequest(c, `Both "html" and "selector" fields are required.`)
	}

	rows, err := extractor.ExtractFixtureTable(req.HTML, req.Selector, extractor.FixtureTableOptions{
		LabelSelector: req.LabelSelector,
		Timezone:      h.matchTimezone,
	})
	if err != nil {
		return extractionError(c, err)
	}
	logger.Log.Info().Int("rows", len(rows)).Msg("fixture table extracted")
	return c.JSON(rows)
}

func (h *Handler) handleExtractMatch(c *fiber.Ctx) error {
	var req ExtractPageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.HTML == "" {
		return badRequest(c, "HTML content is required")
	}

	report, err := extractor.ExtractMatchReport(req.HTML)
	if err != nil {
		return extractionError(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) handleExtractTeam(c *fiber.Ctx) error {
	var req ExtractPageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.HTML == "" {
		return badRequest(c, "HTML content is required")
	}

	profile, err := extractor.ExtractTeamProfile(req.HTML)
	if err != nil {
		return extractionError(c, err)
	}
	return c.JSON(profile)
}

func (h *Handler) handleExtractPlayer(c *fiber.Ctx) error {
	var req ExtractPageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.HTML == "" {
		return badRequest(c, "HTML content is required")
	}

	profile, err := extractor.ExtractPlayerProfile(req.HTML)
	if err != nil {
		return extractionError(c, err)
	}
	return c.JSON(profile)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// extractionError maps a failure to a client error. Structural failures keep
// their stable message; anything else is reported generically so internal
// details never reach the caller.
func extractionError(c *fiber.Ctx, err error) error {
	var structural *extractor.StructuralError
	if errors.As(err, &structural) {
		return badRequest(c, structural.Error())
	}
	logger.Log.Error().Err(err).Msg("extraction failed")
	return badRequest(c, "An error occurred while processing the HTML.")
}
