package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docassist-backend/internal/shared/server/middleware"
	"docassist-backend/internal/shared/server/respond"
)

// maxUploadBody caps the multipart request body; the per-document ceiling is
// checked separately by the service.
const maxUploadBody = 2 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.POST("/documents/text", h.uploadText)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.GET("/documents/:id/download", h.download)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	title := c.PostForm("title")
	mimeType := fileHeader.Header.Get("Content-Type")

	doc, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, title, mimeType, data)
	if err != nil {
		h.writeError(c, err, "failed to upload document")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

type uploadTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (h *Handler) uploadText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req uploadTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.UploadText(c.Request.Context(), userID, req.Title, req.Text)
	if err != nil {
		h.writeError(c, err, "failed to save text")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list documents")
		return
	}

	respond.OK(c, gin.H{"documents": toResponses(docs)})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to fetch document")
		return
	}

	respond.OK(c, toResponse(doc))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	raw, doc, err := h.Svc.Download(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to download document")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Length", strconv.Itoa(len(raw)))
	c.Data(http.StatusOK, doc.FileType, raw)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "user not authenticated", nil)
	case errors.Is(err, ErrSizeExceeded):
		respond.Error(c, http.StatusRequestEntityTooLarge, "size_exceeded",
			"File size exceeds the 900KB limit. Please upload smaller files or use text upload for large documents.", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", fallback, nil)
	}
}
