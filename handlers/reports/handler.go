package reports

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PrashantKhatiwada/pulsePoint/db"
	"github.com/PrashantKhatiwada/pulsePoint/models"
	"github.com/PrashantKhatiwada/pulsePoint/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get all crisis reports
// @Description Retrieve all reports, optionally filtered by category, status and recency
// @Tags reports
// @Produce json
// @Param category query string false "Exact category match"
// @Param status query string false "Exact status match"
// @Param days query int false "Only reports created within the last N days"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "message: Invalid days parameter"
// @Failure 500 {object} utils.Response
// @Router /api/reports [get]
func GetAllReports(c *gin.Context) {
	query := db.DB.Model(&models.Report{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if days := c.Query("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			utils.SendError(c, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		query = query.Where("created_at >= ?", time.Now().AddDate(0, 0, -n))
	}

	reports := []models.Report{}
	result := query.Order("created_at DESC").Find(&reports)
	if result.Error != nil {
		utils.LogError(result.Error, "Error fetching reports")
		utils.SendServerError(c, result.Error)
		return
	}

	utils.SendList(c, http.StatusOK, reports, len(reports))
}

// @Summary Create a new crisis report
// @Description Submit a geotagged crisis report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body models.ReportCreate true "Report information"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response "message: missing fields, bad coordinates or validation failure"
// @Failure 500 {object} utils.Response
// @Router /api/report [post]
func CreateReport(c *gin.Context) {
	var input models.ReportCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Request-level pre-check; the model validates again at write time.
	if strings.TrimSpace(input.Description) == "" || input.Latitude == nil || input.Longitude == nil {
		utils.SendError(c, http.StatusBadRequest, "Please provide description, latitude, and longitude")
		return
	}
	if *input.Latitude < -90 || *input.Latitude > 90 ||
		*input.Longitude < -180 || *input.Longitude > 180 {
		utils.SendError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	report := models.Report{
		Description:  input.Description,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		Category:     input.Category,
		Title:        input.Title,
		LocationText: input.LocationText,
		Urgency:      input.Urgency,
	}

	result := db.DB.Create(&report)
	if result.Error != nil {
		var validationErr *models.ValidationError
		if errors.As(result.Error, &validationErr) {
			utils.SendError(c, http.StatusBadRequest, validationErr.Error())
			return
		}
		utils.LogError(result.Error, "Error creating report")
		utils.SendServerError(c, result.Error)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Report created successfully", report)
}

// @Summary Get a single report
// @Description Retrieve a crisis report by its id
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response "message: Report not found"
// @Failure 500 {object} utils.Response
// @Router /api/report/{id} [get]
func GetReportByID(c *gin.Context) {
	var report models.Report
	result := db.DB.First(&report, "id = ?", c.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Report not found")
			return
		}
		utils.LogError(result.Error, "Error fetching report")
		utils.SendServerError(c, result.Error)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", report)
}

// @Summary Update a report's status
// @Description Change the status of an existing report; the only mutable field
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param status body models.ReportStatusUpdate true "New status"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "message: Please provide status"
// @Failure 404 {object} utils.Response "message: Report not found"
// @Failure 500 {object} utils.Response
// @Router /api/report/{id} [put]
func UpdateReportStatus(c *gin.Context) {
	var input models.ReportStatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if input.Status == "" {
		utils.SendError(c, http.StatusBadRequest, "Please provide status")
		return
	}

	var report models.Report
	result := db.DB.First(&report, "id = ?", c.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Report not found")
			return
		}
		utils.LogError(result.Error, "Error fetching report")
		utils.SendServerError(c, result.Error)
		return
	}

	report.Status = input.Status
	result = db.DB.Save(&report)
	if result.Error != nil {
		var validationErr *models.ValidationError
		if errors.As(result.Error, &validationErr) {
			utils.SendError(c, http.StatusBadRequest, validationErr.Error())
			return
		}
		utils.LogError(result.Error, "Error updating report")
		utils.SendServerError(c, result.Error)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Report status updated successfully", report)
}

// @Summary Get report form options
// @Description Retrieve the accepted category, status and urgency values
// @Tags reports
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/report-options [get]
func GetReportOptions(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"categories": models.Categories(),
		"statuses":   models.Statuses(),
		"urgencies":  models.Urgencies(),
	})
}
