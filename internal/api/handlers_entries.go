package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"fitgenius/internal/models"
	"fitgenius/internal/services"
)

const entryDateLayout = "2006-01-02"

type entryInput struct {
	Date        string   `json:"date"`
	WeightLbs   float64  `json:"weight_lbs"`
	BodyFatPct  *float64 `json:"body_fat_pct"`
	WaistInches *float64 `json:"waist_inches"`
	NeckInches  *float64 `json:"neck_inches"`
	HipInches   *float64 `json:"hip_inches"`
	Notes       string   `json:"notes"`
	PhotoID     string   `json:"photo_id"`
}

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	return c.JSON(fiber.Map{
		"entries":        entries,
		"current_weight": services.ResolveCurrentWeight(entries, user),
	})
}

// CreateEntry appends a progress entry. Entries are immutable; corrections are
// new entries with a newer date.
func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user := currentUser(c)

	var input entryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, err := time.ParseInLocation(entryDateLayout, raw, time.UTC)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	if input.WeightLbs < models.MinWeightLbs || input.WeightLbs > models.MaxWeightLbs {
		return apiError(c, fiber.StatusBadRequest, "weight is out of range")
	}

	entry := models.ProgressEntry{
		UserID:      user.ID,
		Date:        date,
		WeightLbs:   input.WeightLbs,
		BodyFatPct:  input.BodyFatPct,
		WaistInches: input.WaistInches,
		NeckInches:  input.NeckInches,
		HipInches:   input.HipInches,
		Notes:       strings.TrimSpace(input.Notes),
		PhotoID:     strings.TrimSpace(input.PhotoID),
		CreatedAt:   time.Now(),
	}
	if err := handler.repositories.Entries.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ExportEntriesCSV streams the progress history as a CSV attachment, with
// optional inclusive from/to date query bounds.
func (handler *Handler) ExportEntriesCSV(c *fiber.Ctx) error {
	user := currentUser(c)

	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := handler.repositories.Entries.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	entries = services.FilterEntriesByRange(entries, from, to)

	payload, err := services.BuildEntriesCSV(entries)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fitgenius-progress.csv"`)
	return c.Send(payload)
}
