package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	siteGroup := v1.Group("/site")
	{
		siteGroup.GET("/about", h.About)
		siteGroup.GET("/services", h.Services)
		siteGroup.GET("/gallery", h.Gallery)
		siteGroup.GET("/faqs", h.FAQs)
	}
}

func (h *Handler) About(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.About(c.Request.Context()))
}

func (h *Handler) Services(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Services(c.Request.Context()))
}

func (h *Handler) Gallery(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Gallery(c.Request.Context(), c.Query("category")))
}

func (h *Handler) FAQs(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.FAQs(c.Request.Context()))
}
