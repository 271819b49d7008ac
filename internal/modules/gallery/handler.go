package gallery

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/gallery", h.List)
}

func (h *Handler) RegisterProtectedRoutes(admin *gin.RouterGroup) {
	galleryGroup := admin.Group("/gallery")
	{
		galleryGroup.POST("", h.Create)
		galleryGroup.PUT("/:id", h.Update)
		galleryGroup.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load gallery")
		return
	}
	response.Success(c, http.StatusOK, images)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title, category and alt text are required")
		return
	}

	in, ok := imageInputFromForm(c)
	if !ok {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid image id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title, category and alt text are required")
		return
	}

	in, ok := imageInputFromForm(c)
	if !ok {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid image id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
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

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery image not found")
	case errors.Is(err, ErrNoImageProvided):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Either an image file or an image URL is required")
	case errors.Is(err, storage.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "Image exceeds the 10 MB limit")
	case errors.Is(err, storage.ErrInvalidMimeType), errors.Is(err, storage.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_INVALID_TYPE", "Only image files are accepted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gallery operation failed")
	}
}
