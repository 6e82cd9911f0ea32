package session

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicscribe/scribe-api/internal/handler"
	"github.com/clinicscribe/scribe-api/internal/model"
	"github.com/clinicscribe/scribe-api/internal/service/session"
)

// Handler exposes the session workflow over HTTP. Every route is a thin
// translation from request to workflow transition; all the state lives
// in the workflow.
type Handler struct {
	workflow *session.Workflow
}

func NewHandler(workflow *session.Workflow) *Handler {
	return &Handler{workflow: workflow}
}

// RegisterRoutes wires the workflow transitions. The capture route gets
// the rate limiter: it is the one that fans out to hosted AI services.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	sessions := r.Group("/session")
	{
		sessions.GET("", h.Current)
		sessions.POST("/intake", h.Intake)
		sessions.POST("/capture", rateLimit, h.Capture)
		sessions.PUT("/summary", h.EditSummary)
		sessions.POST("/reset", h.Reset)
		sessions.GET("/report", h.Report)
	}
}

func (h *Handler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.workflow.Snapshot()))
}

func (h *Handler) Intake(c *gin.Context) {
	var req model.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	snap, err := h.workflow.Begin(c.Request.Context(), req.Doctor, req.Patient, req.Date)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snap))
}

func (h *Handler) Capture(c *gin.Context) {
	input := model.CaptureInput{
		ManualText: c.PostForm("text"),
	}

	for _, upload := range []struct {
		field string
		dest  *string
	}{
		{"audio", &input.AudioPath},
		{"document", &input.DocumentPath},
	} {
		file, err := c.FormFile(upload.field)
		if err != nil {
			continue
		}
		path := filepath.Join(os.TempDir(),
			fmt.Sprintf("upload-%s%s", uuid.New().String(), filepath.Ext(file.Filename)))
		if err := c.SaveUploadedFile(file, path); err != nil {
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to store upload"))
			return
		}
		defer os.Remove(path)
		*upload.dest = path
	}

	snap, err := h.workflow.Capture(c.Request.Context(), input)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snap))
}

func (h *Handler) EditSummary(c *gin.Context) {
	var req model.EditSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	snap, err := h.workflow.EditSummary(c.Request.Context(), req.Summary)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snap))
}

func (h *Handler) Reset(c *gin.Context) {
	snap, err := h.workflow.Reset()
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snap))
}

// Report streams the rendered document of the session under review.
func (h *Handler) Report(c *gin.Context) {
	path := h.workflow.ReportPath()
	if path == "" {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("no report has been generated"))
		return
	}
	c.FileAttachment(path, "report.pdf")
}
