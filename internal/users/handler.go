package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docassist-backend/internal/shared/server/middleware"
	"docassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

type profileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// me upserts the caller's profile from the request identity and returns it.
func (h *Handler) me(c *gin.Context) {
	id := Identity{
		ID:          middleware.UserIDFromContext(c),
		Name:        middleware.UserNameFromContext(c),
		Email:       middleware.UserEmailFromContext(c),
		Phone:       middleware.UserPhoneFromContext(c),
		IsAnonymous: middleware.IsGuestFromContext(c),
	}

	u, err := h.Svc.UpsertFromAuth(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "user not authenticated", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load profile", nil)
		return
	}

	respond.OK(c, profileResponse{
		ID:          u.ID,
		DisplayName: DisplayName(u),
		Email:       u.Email,
		Phone:       u.Phone,
		IsAnonymous: u.IsAnonymous,
	})
}
