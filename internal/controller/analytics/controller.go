// Package analytics provides HTTP handlers exposing the derived dashboard
// views. Every handler re-fetches the caller's snapshot and recomputes,
// derived numbers are never cached or persisted.
package analytics

import (
	"CareerCompass-backend/internal/analytics"
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/utilities"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsController handles aggregation endpoints
type AnalyticsController struct {
	DB *database.DBinstanceStruct
}

// NewAnalyticsController creates a new instance of AnalyticsController with the provided database connection.
func NewAnalyticsController(db *database.DBinstanceStruct) *AnalyticsController {
	return &AnalyticsController{
		DB: db,
	}
}

// WeeklyResponse bundles weekly trend numbers with the derived success rate
type WeeklyResponse struct {
	analytics.WeeklyStats
	InterviewSuccessRate int `json:"interview_success_rate"`
}

// OffersResponse bundles per-offer timings with their average
type OffersResponse struct {
	Offers      []analytics.OfferTiming `json:"offers"`
	AverageDays int                     `json:"average_days"`
}

// DashboardResponse combines every derived view for a single dashboard fetch
type DashboardResponse struct {
	StatusCounts analytics.StatusCounts  `json:"status_counts"`
	Weekly       WeeklyResponse          `json:"weekly"`
	Companies    []analytics.CompanyStat `json:"companies"`
	Offers       OffersResponse          `json:"offers"`
}

func (ac *AnalyticsController) fetchApplications(c *gin.Context, userID uuid.UUID) ([]model.Application, bool) {
	var applications []model.Application
	if err := ac.DB.Where("user_id = ?", userID).Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return nil, false
	}
	return applications, true
}

// GetStatusCounts returns the caller's applications tallied by status.
// @Summary Get application counts grouped by status
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} analytics.StatusCounts "Counts keyed by status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/status [get]
func (ac *AnalyticsController) GetStatusCounts(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.CountByStatus(applications))
}

// GetWeeklyStats returns this week's application numbers against last week's.
// @Summary Get weekly application trend and interview success rate
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} WeeklyResponse "Weekly trend numbers"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/weekly [get]
func (ac *AnalyticsController) GetWeeklyStats(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	ws := analytics.ComputeWeeklyStats(applications, time.Now())
	c.JSON(http.StatusOK, WeeklyResponse{
		WeeklyStats:          ws,
		InterviewSuccessRate: analytics.InterviewSuccessRate(ws),
	})
}

// GetCompanyStats returns the top companies ranked by application volume.
// @Summary Get per-company application totals and response rates
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} analytics.CompanyStat "Ranked company statistics"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/companies [get]
func (ac *AnalyticsController) GetCompanyStats(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.RankCompanies(applications))
}

// GetOfferStats returns time-to-offer numbers for applications with offers.
// @Summary Get days-to-offer per offer and their average
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} OffersResponse "Offer timing statistics"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/offers [get]
func (ac *AnalyticsController) GetOfferStats(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	timings := analytics.OfferTimings(applications)
	c.JSON(http.StatusOK, OffersResponse{
		Offers:      timings,
		AverageDays: analytics.AverageDaysToOffer(timings),
	})
}

// GetDashboard returns every derived view in one response.
// @Summary Get combined dashboard statistics
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} DashboardResponse "Combined dashboard statistics"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/dashboard [get]
func (ac *AnalyticsController) GetDashboard(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	ws := analytics.ComputeWeeklyStats(applications, time.Now())
	timings := analytics.OfferTimings(applications)

	c.JSON(http.StatusOK, DashboardResponse{
		StatusCounts: analytics.CountByStatus(applications),
		Weekly: WeeklyResponse{
			WeeklyStats:          ws,
			InterviewSuccessRate: analytics.InterviewSuccessRate(ws),
		},
		Companies: analytics.RankCompanies(applications),
		Offers: OffersResponse{
			Offers:      timings,
			AverageDays: analytics.AverageDaysToOffer(timings),
		},
	})
}

// GetCalendar returns the merged calendar of interviews and plan milestones.
// With a date query only that day's events are returned.
// @Summary Get calendar events from interviews and incomplete milestones
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param date query string false "Return only events on this calendar date (RFC 3339)"
// @Success 200 {array} analytics.CalendarEvent "Date-sorted calendar events"
// @Failure 400 {object} utilities.ErrorResponse "Invalid date query"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /calendar [get]
func (ac *AnalyticsController) GetCalendar(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications, ok := ac.fetchApplications(c, user.ID)
	if !ok {
		return
	}

	var plans []model.CareerPlan
	if err := ac.DB.Preload("Milestones").Where("user_id = ?", user.ID).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve career plans: %s", err.Error()),
		})
		return
	}

	events := analytics.ProjectCalendar(applications, plans)

	if rawDate := c.Query("date"); rawDate != "" {
		day, err := time.Parse(time.RFC3339, rawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid date query: %s", err.Error()),
			})
			return
		}
		events = analytics.EventsOnDay(events, day)
	}

	c.JSON(http.StatusOK, events)
}
