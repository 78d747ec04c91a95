package chat

import (
	"net/http"
	"strings"

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

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.ask)
}

type askRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

func (h *Handler) ask(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply := h.Svc.Answer(c.Request.Context(), userID, req.Message, req.History)
	respond.OK(c, gin.H{"reply": reply})
}
