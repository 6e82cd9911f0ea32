package label

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicscribe/scribe-api/internal/handler"
	"github.com/clinicscribe/scribe-api/internal/i18n"
)

// Handler serves the UI label packs.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/labels", h.Labels)
}

func (h *Handler) Labels(c *gin.Context) {
	lang := c.DefaultQuery("lang", i18n.DefaultLanguage)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"language":  lang,
		"languages": i18n.Languages(),
		"labels":    i18n.Labels(lang),
	}))
}
