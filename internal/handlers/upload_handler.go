package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"gantavya-backend/dto"
	"gantavya-backend/internal/storage"
)

// UploadIDProof godoc
// @Summary Upload a leader ID proof
// @Description Accepts a single PDF up to 2MB and returns its public URL. Bucket and path default to the registration ID-proof location when omitted.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "ID proof PDF"
// @Param bucket formData string false "Target bucket"
// @Param path formData string false "Target object path"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.UploadResponse
// @Failure 404 {object} dto.UploadResponse
// @Failure 500 {object} dto.UploadResponse
// @Router /api/upload [post]
func UploadIDProof(uploads storage.Uploader, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil || fh == nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.UploadResponse{Success: false, Error: "No file provided"})
		}

		bucket := c.FormValue("bucket")
		if bucket == "" {
			bucket = storage.DefaultBucket
		}
		path := c.FormValue("path")
		if path == "" {
			path = storage.IDProofPath(fh.Filename)
		}

		if err := storage.ValidateIDProof(fh.Header.Get("Content-Type"), fh.Size); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.UploadResponse{Success: false, Error: err.Error()})
		}

		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "Failed to read file"})
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		url, err := uploads.Upload(ctx, bucket, path, f)
		if errors.Is(err, storage.ErrBucketNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.UploadResponse{
				Success: false,
				Error:   "Storage bucket \"" + bucket + "\" not found. Ask an operator to create it.",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "Failed to upload file"})
		}

		return c.JSON(dto.UploadResponse{Success: true, PublicURL: url})
	}
}
