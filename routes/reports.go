package routes

import (
	"github.com/PrashantKhatiwada/pulsePoint/handlers/reports"

	"github.com/gin-gonic/gin"
)

func ReportsRoutes(r *gin.Engine) {
	// All report routes are public; the paths mirror the historical API.
	api := r.Group("/api")
	{
		api.GET("/reports", reports.GetAllReports)
		api.POST("/report", reports.CreateReport)
		api.GET("/report/:id", reports.GetReportByID)
		api.PUT("/report/:id", reports.UpdateReportStatus)
		api.GET("/report-options", reports.GetReportOptions)
	}
}
