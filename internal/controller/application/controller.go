// Package application provides HTTP handlers for job application tracking.
package application

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/utilities"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ApplicationController handles job application tracking endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// CreateApplication handles the creation of a new tracked job application.
// Status always starts at "applied" regardless of request body.
// @Summary Create job application record
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body model.Application true "Application information"
// @Success 201 {object} model.Application "Successfully create application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [post]
func (ac *ApplicationController) CreateApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	application := model.Application{}
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application.UserID = user.ID
	application.Status = model.StatusApplied
	if application.AppliedDate.IsZero() {
		application.AppliedDate = time.Now()
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		// Foreign key violation means ResumeID points to a missing file
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23503" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: fmt.Sprintf("Invalid ResumeID: %s", err.Error()),
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GetApplications fetches the authenticated user's applications, optionally
// filtered by status or company substring.
// @Summary Get own job application records based on query
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Status field, must exactly match to get result"
// @Param company query string false "Search from company name with substring matching and case insensitive"
// @Param desc query boolean false "Sorting by applied date in descending if true, otherwise ascending"
// @Success 200 {array} model.Application "Return application record(s)"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [get]
func (ac *ApplicationController) GetApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	rawStatus := c.Query("status")
	rawCompany := c.Query("company")
	rawDesc := c.Query("desc")

	var applications []model.Application

	result := ac.DB.Where("user_id = ?", user.ID)

	if rawStatus != "" {
		result = result.Where("status = ?", rawStatus)
	}

	if rawCompany != "" {
		result = result.Where("company ILIKE ?", "%"+rawCompany+"%")
	}

	isDesc, err := strconv.ParseBool(rawDesc)
	if err != nil {
		isDesc = true
	}
	if isDesc {
		result = result.Order("applied_date DESC")
	} else {
		result = result.Order("applied_date ASC")
	}

	if err := result.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// EditApplication merges non-empty editable fields from the request body
// into an existing application owned by the caller.
// @Summary Edit own job application record
// @Description Only provided fields are updated. Status must be one of the known statuses.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param application body model.EditableApplicationInfo true "Fields to update"
// @Success 200 {object} model.Application "Successfully update application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id} [patch]
func (ac *ApplicationController) EditApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	application, ok := ac.findOwned(c, user.ID)
	if !ok {
		return
	}

	var edit model.EditableApplicationInfo
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&edit); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if edit.Status != "" && !model.IsValidStatus(edit.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown status: %s", edit.Status),
		})
		return
	}

	utilities.MergeNonEmpty(&application.EditableApplicationInfo, &edit)

	if err := ac.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}

type interviewSchedule struct {
	InterviewDate *time.Time `json:"interview_date"`
}

// ScheduleInterview sets or clears the interview date of an owned application.
// @Summary Schedule or clear interview date for an application
// @Description Passing null interview_date clears the schedule
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param schedule body interviewSchedule true "Interview date, null to clear"
// @Success 200 {object} model.Application "Successfully update schedule"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id}/interview [put]
func (ac *ApplicationController) ScheduleInterview(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	application, ok := ac.findOwned(c, user.ID)
	if !ok {
		return
	}

	var schedule interviewSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := ac.DB.Model(&application).Update("interview_date", schedule.InterviewDate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update schedule: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}

// DeleteApplication removes an owned application record.
// @Summary Delete own job application record
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} utilities.MessageResponse "Successfully delete application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id} [delete]
func (ac *ApplicationController) DeleteApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	application, ok := ac.findOwned(c, user.ID)
	if !ok {
		return
	}

	if err := ac.DB.Delete(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Application deleted"})
}

// findOwned loads the application from the :id path param, scoped to the
// owner. Writes the error response itself when the lookup fails.
func (ac *ApplicationController) findOwned(c *gin.Context, ownerID interface{}) (model.Application, bool) {
	var application model.Application

	if err := ac.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), ownerID).
		First(&application).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Application not found",
			})
			return application, false
		}

		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return application, false
	}

	return application, true
}
