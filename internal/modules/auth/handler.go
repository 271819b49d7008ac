package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.GET("/oauth/:provider", h.OAuthRedirect)
	}
}

func (h *Handler) RegisterProtectedRoutes(admin *gin.RouterGroup) {
	admin.GET("/me", h.GetMe)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Email or password is incorrect")
		case errors.Is(err, ErrNotAdmin):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This account is not an admin")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    result.Profile.ID,
			"email": result.Profile.Email,
		},
		"token": result.Token,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSecret):
			response.Error(c, http.StatusForbidden, "INVALID_SECRET", "Registration secret is incorrect")
		case errors.Is(err, ErrNotAdmin):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This email is not allowed to register")
		case errors.Is(err, ErrDuplicateRegistration):
			response.Error(c, http.StatusConflict, "DUPLICATE_REGISTRATION", "An admin profile already exists for this email")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"admin": gin.H{
			"id":    result.Profile.ID,
			"email": result.Profile.Email,
		},
		"token": result.Token,
	})
}

func (h *Handler) OAuthRedirect(c *gin.Context) {
	target, err := h.service.OAuthRedirectURL(c.Param("provider"), c.Query("redirect_to"))
	if err != nil {
		if errors.Is(err, ErrOAuthUnavailable) {
			response.Error(c, http.StatusServiceUnavailable, "OAUTH_UNAVAILABLE", "OAuth login is not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build OAuth redirect")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, target)
}

func (h *Handler) GetMe(c *gin.Context) {
	adminID := c.GetInt64("admin_id")

	profile, err := h.service.CurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin profile not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    profile.ID,
			"email": profile.Email,
		},
	})
}
