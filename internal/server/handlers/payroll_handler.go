package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payrollms/internal/service/payroll"
)

// PayrollHandler exposes payroll generation and retrieval over HTTP.
type PayrollHandler struct {
	svc    *payroll.Service
	logger *zap.Logger
}

// NewPayrollHandler constructs the HTTP handler adapter.
func NewPayrollHandler(svc *payroll.Service, logger *zap.Logger) *PayrollHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollHandler{svc: svc, logger: logger}
}

type generatePayrollRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=1"`
	Bonus      float64 `json:"bonus" binding:"gte=0"`
}

// Generate creates the payroll for one employee and month.
func (h *PayrollHandler) Generate(c *gin.Context) {
	var req generatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate payroll payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), req.EmployeeID, req.Month, req.Year, req.Bonus)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPayrollAlreadyExists):
			// Hand the stored record back so the caller can display it.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "payroll": result})
		case errors.Is(err, payroll.ErrEmployeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, payroll.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed generating payroll", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate payroll"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetByEmployee returns one payroll when month and year are supplied, or
// the employee's full history otherwise.
func (h *PayrollHandler) GetByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")

	monthStr, yearStr := c.Query("month"), c.Query("year")
	if monthStr == "" && yearStr == "" {
		history, err := h.svc.ListByEmployee(c.Request.Context(), employeeID)
		if err != nil {
			h.logger.Error("failed listing payroll history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payrolls"})
			return
		}
		c.JSON(http.StatusOK, history)
		return
	}

	month, year, ok := parsePeriod(c, monthStr, yearStr)
	if !ok {
		return
	}

	result, err := h.svc.Get(c.Request.Context(), employeeID, month, year)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPayrollNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, payroll.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed getting payroll", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get payroll"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByPeriod returns all payrolls generated for one month.
func (h *PayrollHandler) ListByPeriod(c *gin.Context) {
	month, year, ok := parsePeriod(c, c.Query("month"), c.Query("year"))
	if !ok {
		return
	}

	payrolls, err := h.svc.ListByPeriod(c.Request.Context(), month, year)
	if err != nil {
		if errors.Is(err, payroll.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed listing payrolls", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payrolls"})
		return
	}

	c.JSON(http.StatusOK, payrolls)
}

// Delete removes one payroll so it can be regenerated.
func (h *PayrollHandler) Delete(c *gin.Context) {
	employeeID := c.Param("employeeID")
	month, year, ok := parsePeriod(c, c.Query("month"), c.Query("year"))
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), employeeID, month, year)
	if err != nil {
		if errors.Is(err, payroll.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed deleting payroll", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payroll"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "payroll record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// parsePeriod reads month/year query parameters, writing a 400 response
// itself when they are missing or malformed.
func parsePeriod(c *gin.Context, monthStr, yearStr string) (month, year int, ok bool) {
	month, errM := strconv.Atoi(monthStr)
	year, errY := strconv.Atoi(yearStr)
	if errM != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month and year query parameters are required"})
		return 0, 0, false
	}
	return month, year, true
}
