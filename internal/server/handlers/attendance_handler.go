package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payrollms/internal/service/attendance"
)

const dateLayout = "2006-01-02"

// AttendanceHandler exposes attendance marking and monthly listings.
type AttendanceHandler struct {
	svc    *attendance.Service
	logger *zap.Logger
}

// NewAttendanceHandler constructs the HTTP handler adapter.
func NewAttendanceHandler(svc *attendance.Service, logger *zap.Logger) *AttendanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceHandler{svc: svc, logger: logger}
}

type markAttendanceRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	CheckInTime  string `json:"checkin_time"`
	CheckOutTime string `json:"checkout_time"`
}

// Mark records or updates one employee-day attendance record.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid attendance payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	att, err := h.svc.Mark(c.Request.Context(), req.EmployeeID, date, req.CheckInTime, req.CheckOutTime)
	if err != nil {
		h.logger.Error("failed marking attendance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark attendance"})
		return
	}

	c.JSON(http.StatusOK, att)
}

type markLOPRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// MarkLOP flags one employee-day as loss of pay.
func (h *AttendanceHandler) MarkLOP(c *gin.Context) {
	var req markLOPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid lop payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	att, err := h.svc.MarkLOP(c.Request.Context(), req.EmployeeID, date)
	if err != nil {
		h.logger.Error("failed marking lop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark loss of pay"})
		return
	}

	c.JSON(http.StatusOK, att)
}

// ListMonth returns one employee's attendance records and the derived
// summary for a month.
func (h *AttendanceHandler) ListMonth(c *gin.Context) {
	employeeID := c.Param("employeeID")
	month, year, ok := parsePeriod(c, c.Query("month"), c.Query("year"))
	if !ok {
		return
	}

	records, err := h.svc.ListMonth(c.Request.Context(), employeeID, month, year)
	if err != nil {
		h.logger.Error("failed listing attendance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attendance"})
		return
	}

	summary, err := h.svc.Summarize(c.Request.Context(), employeeID, month, year)
	if err != nil {
		h.logger.Error("failed summarizing attendance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "summary": summary})
}
