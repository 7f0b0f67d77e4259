package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/spandan012/HRMS-liteApp/internal/service"
	"github.com/spandan012/HRMS-liteApp/pkg/response"
)

// SummaryHandler serves the aggregate summary endpoint.
type SummaryHandler struct {
	summarySvc service.SummaryService
}

// NewSummaryHandler creates the SummaryHandler.
func NewSummaryHandler(summarySvc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// Get returns store-wide totals and per-employee present-day counts.
// GET /api/summary
func (h *SummaryHandler) Get(c *gin.Context) {
	summary, err := h.summarySvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
