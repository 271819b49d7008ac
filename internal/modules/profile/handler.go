package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/pkg/response"
	"makeupstudio/internal/storage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(admin *gin.RouterGroup) {
	profileGroup := admin.Group("/profile")
	{
		profileGroup.GET("", h.Get)
		profileGroup.PUT("/bio", h.UpdateBio)
		profileGroup.PUT("/image/:field", h.UpdateImage)
	}
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.GetInt64("admin_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateBio(c *gin.Context) {
	var req UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.UpdateBio(c.Request.Context(), c.GetInt64("admin_id"), req)
	if err != nil {
		if errors.Is(err, ErrUnknownBioField) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown bio field")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update bio")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// UpdateImage accepts multipart form data with either an "image" file or an
// "image_url" field, never both.
func (h *Handler) UpdateImage(c *gin.Context) {
	in, ok := imageInputFromForm(c)
	if !ok {
		return
	}

	resp, err := h.service.UpdateImage(c.Request.Context(), c.GetInt64("admin_id"), c.Param("field"), in)
	if err != nil {
		writeImageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func imageInputFromForm(c *gin.Context) (domain.ImageInput, bool) {
	fh, fileErr := c.FormFile("image")
	url := c.PostForm("image_url")

	if fileErr == nil && url != "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Provide an image file or an image URL, not both")
		return domain.ImageInput{}, false
	}
	if fileErr == nil {
		return domain.ImageInputFromFile(fh), true
	}
	return domain.ImageInputFromURL(url), true
}

func writeImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownImageField):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown image field")
	case errors.Is(err, ErrNoImageProvided):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Either an image file or an image URL is required")
	case errors.Is(err, storage.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "Image exceeds the 10 MB limit")
	case errors.Is(err, storage.ErrInvalidMimeType), errors.Is(err, storage.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_INVALID_TYPE", "Only image files are accepted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update image")
	}
}
