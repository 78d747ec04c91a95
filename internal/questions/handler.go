package questions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docassist-backend/internal/documents"
	"docassist-backend/internal/llm"
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

// RegisterRoutes attaches résumé and question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.listResumes)
	rg.POST("/resumes/questions", h.generate)
}

type resumeResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	FileName  string `json:"fileName"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handler) listResumes(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumes, err := h.Svc.Resumes(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}

	out := make([]resumeResponse, 0, len(resumes))
	for _, doc := range resumes {
		out = append(out, resumeResponse{
			ID:        doc.ID,
			Title:     doc.Title,
			FileName:  doc.FileName,
			CreatedAt: doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	respond.OK(c, gin.H{"resumes": out})
}

type generateRequest struct {
	DocumentID string `json:"documentId"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	qs, err := h.Svc.Generate(c.Request.Context(), userID, req.DocumentID)
	if err != nil {
		h.writeError(c, err, "failed to generate questions")
		return
	}

	respond.OK(c, gin.H{"questions": qs, "count": len(qs)})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, documents.ErrUnauthenticated):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "user not authenticated", nil)
	case errors.Is(err, ErrNoResumeDocuments):
		respond.Error(c, http.StatusUnprocessableEntity, "no_resume",
			"No resume found. Please upload a resume document first.", nil)
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_not_configured",
			"AI features are not configured. Please set an API key.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", fallback, nil)
	}
}
