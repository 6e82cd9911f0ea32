package record

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicscribe/scribe-api/internal/handler"
	"github.com/clinicscribe/scribe-api/internal/model"
	"github.com/clinicscribe/scribe-api/internal/repository"
	"github.com/clinicscribe/scribe-api/internal/service/email"
	"github.com/clinicscribe/scribe-api/internal/service/report"
	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

// Handler serves the history view: stored records and their reports.
type Handler struct {
	repo     repository.SessionRepository
	renderer *report.Service
	emailer  email.Service
}

func NewHandler(repo repository.SessionRepository, renderer *report.Service, emailer email.Service) *Handler {
	return &Handler{repo: repo, renderer: renderer, emailer: emailer}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/records")
	{
		records.GET("", h.List)
		records.GET("/:id", h.Get)
		records.GET("/:id/report", h.Report)
		records.POST("/:id/email", h.Email)
	}
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	if rows == nil {
		rows = []*model.SessionRecordSummary{}
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(rows))
}

func (h *Handler) Get(c *gin.Context) {
	record, err := h.recordFromPath(c)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) Report(c *gin.Context) {
	record, err := h.recordFromPath(c)
	if err != nil {
		handler.Error(c, err)
		return
	}

	rendered, err := h.renderer.RenderRecord(record)
	if err != nil {
		handler.Error(c, apperrors.Internal(err))
		return
	}

	filename := fmt.Sprintf("report-visit-%d.pdf", record.VisitNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", rendered.PDF)
}

func (h *Handler) Email(c *gin.Context) {
	if !h.emailer.Enabled() {
		c.JSON(http.StatusNotImplemented, handler.NewErrorResponse("email export is not configured"))
		return
	}

	var req model.EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.recordFromPath(c)
	if err != nil {
		handler.Error(c, err)
		return
	}

	rendered, err := h.renderer.RenderRecord(record)
	if err != nil {
		handler.Error(c, apperrors.Internal(err))
		return
	}

	if err := h.emailer.SendReport(req.To, record.Patient, record.VisitNumber, rendered.PDF); err != nil {
		handler.Error(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"sent": true}))
}

func (h *Handler) recordFromPath(c *gin.Context) (*model.SessionRecord, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, apperrors.Validation("invalid record id")
	}
	return h.repo.Get(c.Request.Context(), id)
}
