package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/notes-assistant/internal/domain/notes"
)

// Handler wires the HTTP transport to the notes service.
type Handler struct {
	svc    notes.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc notes.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Summarize handles POST /summarize.
func (h *Handler) Summarize(c *gin.Context) {
	serveFlow(c, h, h.svc.Summarize)
}

// GenerateNotes handles POST /generate_notes.
func (h *Handler) GenerateNotes(c *gin.Context) {
	serveFlow(c, h, h.svc.GenerateNotes)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serveFlow decodes the body, runs one notes flow and writes its envelope.
// A body that is not a JSON object is passed on as empty so the flow rejects
// it with its own missing-field message.
func serveFlow[T any](c *gin.Context, h *Handler, run func(context.Context, notes.Request) (T, error)) {
	var req notes.Request
	if err := c.ShouldBindJSON(&req.Fields); err != nil {
		h.logger.Debug("request body is not a json object", "path", c.Request.URL.Path, "error", err)
		req.Fields = nil
	}

	resp, err := run(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromFlowError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}
