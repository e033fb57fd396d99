package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	repo "payrollms/internal/repository/mongodb"
)

// MasterHandler exposes the read-only master-data inputs consumed by
// payroll generation: employees and the holiday calendar.
type MasterHandler struct {
	employees repo.EmployeeRepository
	holidays  repo.HolidayRepository
	logger    *zap.Logger
}

// NewMasterHandler constructs the HTTP handler adapter.
func NewMasterHandler(employees repo.EmployeeRepository, holidays repo.HolidayRepository, logger *zap.Logger) *MasterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MasterHandler{employees: employees, holidays: holidays, logger: logger}
}

// ListEmployees returns all active employees.
func (h *MasterHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee returns one employee master record.
func (h *MasterHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employees.GetByID(c.Request.Context(), c.Param("employeeID"))
	if err != nil {
		h.logger.Error("failed getting employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get employee"})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// ListHolidays returns the active holiday calendar.
func (h *MasterHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.holidays.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing holidays", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list holidays"})
		return
	}
	c.JSON(http.StatusOK, holidays)
}
