package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/spandan012/HRMS-liteApp/internal/dto"
	"github.com/spandan012/HRMS-liteApp/internal/service"
	"github.com/spandan012/HRMS-liteApp/pkg/response"
)

// EmployeeHandler serves the roster endpoints.
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler creates the EmployeeHandler.
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// List returns all employees, newest first.
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"employees": employees})
}

// Create adds an employee to the roster.
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "employeeId, fullName, email and department are required.")
		return
	}

	employee, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, employee)
}

// Delete removes an employee; the store cascades its attendance records.
// DELETE /api/employees/:employeeId
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID := c.Param("employeeId")

	if err := h.employeeSvc.Delete(c.Request.Context(), employeeID); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Employee deleted."})
}

// handleEmployeeError translates employee business errors to HTTP responses.
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeFieldsRequired):
		response.BadRequest(c, "employeeId, fullName, email and department are required.")
	case errors.Is(err, service.ErrInvalidEmail):
		response.BadRequest(c, "Invalid email format.")
	case errors.Is(err, service.ErrEmployeeIDExists):
		response.Conflict(c, "An employee with this ID already exists.")
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, "An employee with this email already exists.")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found.")
	default:
		response.InternalError(c)
	}
}
