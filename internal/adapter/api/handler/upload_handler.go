package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
	"github.com/Promisekel/rent-easy-gh/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadHandler struct {
	storage usecase.StorageClient
}

var uploadHandler *UploadHandler

func NewUploadHandler(storage usecase.StorageClient) *UploadHandler {
	return &UploadHandler{
		storage: storage,
	}
}

func SetupUploadHandler(storage usecase.StorageClient) {
	uploadHandler = NewUploadHandler(storage)
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func (h *UploadHandler) UploadListingImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image file", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("Image size exceeds maximum allowed (%dMB)", maxImageSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.Error(c, errors.BadRequest("Image must be JPEG, PNG or WebP", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}
	defer src.Close()

	url, err := h.storage.UploadListingImage(c.Request().Context(), src, contentType)
	if err != nil {
		logger.Error("Image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
