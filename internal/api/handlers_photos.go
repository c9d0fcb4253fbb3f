package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxPhotoBytes = 10 << 20

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadPhoto stores a progress photo on disk under a uuid-derived name and
// returns the ID the entry payload references. Files are namespaced per user.
func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	user := currentUser(c)

	file, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo file is required")
	}
	if file.Size > maxPhotoBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "photo exceeds 10 MB")
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[extension] {
		return apiError(c, fiber.StatusBadRequest, "unsupported photo format")
	}

	photoID := uuid.NewString() + extension
	userDir := filepath.Join(handler.photoDir, fmt.Sprintf("%d", user.ID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}
	if err := c.SaveFile(file, filepath.Join(userDir, photoID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photo_id": photoID})
}

func (handler *Handler) GetPhoto(c *fiber.Ctx) error {
	user := currentUser(c)

	photoID := strings.TrimSpace(c.Params("id"))
	// The ID is a generated uuid filename; anything with path syntax is hostile.
	if photoID == "" || photoID != filepath.Base(photoID) || strings.Contains(photoID, "..") {
		return apiError(c, fiber.StatusBadRequest, "invalid photo id")
	}

	path := filepath.Join(handler.photoDir, fmt.Sprintf("%d", user.ID), photoID)
	if _, err := os.Stat(path); err != nil {
		return apiError(c, fiber.StatusNotFound, "photo not found")
	}
	return c.SendFile(path)
}
