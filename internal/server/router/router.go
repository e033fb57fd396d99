package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payrollms/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(
	payrollHandler *handlers.PayrollHandler,
	attendanceHandler *handlers.AttendanceHandler,
	masterHandler *handlers.MasterHandler,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/payrolls", payrollHandler.Generate)
		api.GET("/payrolls", payrollHandler.ListByPeriod)
		api.GET("/payrolls/:employeeID", payrollHandler.GetByEmployee)
		api.DELETE("/payrolls/:employeeID", payrollHandler.Delete)

		api.POST("/attendance", attendanceHandler.Mark)
		api.POST("/attendance/lop", attendanceHandler.MarkLOP)
		api.GET("/attendance/:employeeID", attendanceHandler.ListMonth)

		api.GET("/employees", masterHandler.ListEmployees)
		api.GET("/employees/:employeeID", masterHandler.GetEmployee)
		api.GET("/holidays", masterHandler.ListHolidays)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
