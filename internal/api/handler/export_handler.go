package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/spandan012/HRMS-liteApp/internal/service"
	"github.com/spandan012/HRMS-liteApp/pkg/response"
)

// ExportHandler serves the downloadable exports.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Summary streams the summary workbook.
// GET /api/summary/export
func (h *ExportHandler) Summary(c *gin.Context) {
	buf, filename, err := h.exportSvc.SummaryWorkbook(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.QueryEscape(filename)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// EmployeeCalendar streams one employee's attendance as an iCalendar feed.
// GET /api/employees/:employeeId/attendance/calendar
func (h *ExportHandler) EmployeeCalendar(c *gin.Context) {
	employeeID := c.Param("employeeId")

	buf, filename, err := h.exportSvc.EmployeeCalendar(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "Employee not found.")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.QueryEscape(filename)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
