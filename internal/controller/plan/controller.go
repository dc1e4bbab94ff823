// Package plan provides HTTP handlers for career plans and milestones.
package plan

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/utilities"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlanController handles career plan related endpoints
type PlanController struct {
	DB *database.DBinstanceStruct
}

// NewPlanController creates a new instance of PlanController with the provided database connection.
func NewPlanController(db *database.DBinstanceStruct) *PlanController {
	return &PlanController{
		DB: db,
	}
}

type milestoneInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date" binding:"required"`
}

type planInput struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Milestones  []milestoneInput `json:"milestones"`
}

// CreatePlan creates a career plan with its milestones for the caller.
// @Summary Create career plan with milestones
// @Tags Plan
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param plan body planInput true "Plan title and milestones"
// @Success 201 {object} model.CareerPlan "Successfully create plan"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /plan [post]
func (pc *PlanController) CreatePlan(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	plan := model.CareerPlan{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
	}
	for _, m := range input.Milestones {
		plan.Milestones = append(plan.Milestones, model.Milestone{
			Title:       m.Title,
			Description: m.Description,
			TargetDate:  m.TargetDate,
		})
	}

	if err := pc.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create plan: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlans fetches the caller's career plans with milestones.
// @Summary Get own career plans
// @Tags Plan
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.CareerPlan "Return career plan(s)"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /plan [get]
func (pc *PlanController) GetPlans(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var plans []model.CareerPlan
	if err := pc.DB.Preload("Milestones").Where("user_id = ?", user.ID).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve plans: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, plans)
}

type milestoneCompletion struct {
	Completed *bool `json:"completed" binding:"required"`
}

// CompleteMilestone marks a milestone of an owned plan completed or not.
// @Summary Set completion flag of a milestone
// @Tags Plan
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Plan ID"
// @Param milestone_id path int true "Milestone ID"
// @Param completion body milestoneCompletion true "Completion flag"
// @Success 200 {object} model.Milestone "Successfully update milestone"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Plan or milestone not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /plan/{id}/milestone/{milestone_id} [patch]
func (pc *PlanController) CompleteMilestone(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	plan, ok := pc.findOwned(c, user)
	if !ok {
		return
	}

	var completion milestoneCompletion
	if err := c.ShouldBindJSON(&completion); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var milestone model.Milestone
	if err := pc.DB.
		Where("id = ? AND plan_id = ?", c.Param("milestone_id"), plan.ID).
		First(&milestone).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Milestone not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve milestone: %s", err.Error()),
		})
		return
	}

	if err := pc.DB.Model(&milestone).Update("completed", *completion.Completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update milestone: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, milestone)
}

// DeletePlan removes an owned plan and its milestones.
// @Summary Delete own career plan
// @Tags Plan
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Plan ID"
// @Success 200 {object} utilities.MessageResponse "Successfully delete plan"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Plan not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /plan/{id} [delete]
func (pc *PlanController) DeletePlan(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	plan, ok := pc.findOwned(c, user)
	if !ok {
		return
	}

	if err := pc.DB.Select("Milestones").Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete plan: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Plan deleted"})
}

func (pc *PlanController) findOwned(c *gin.Context, user model.User) (model.CareerPlan, bool) {
	var plan model.CareerPlan

	if err := pc.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&plan).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Plan not found",
			})
			return plan, false
		}

		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve plan: %s", err.Error()),
		})
		return plan, false
	}

	return plan, true
}
