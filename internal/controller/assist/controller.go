package assist

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AssistController handles AI-assisted endpoints
type AssistController struct {
	DB *database.DBinstanceStruct
}

// NewAssistController creates a new instance of AssistController with the provided database connection.
func NewAssistController(db *database.DBinstanceStruct) *AssistController {
	return &AssistController{
		DB: db,
	}
}

type practiceInput struct {
	Position string `json:"position" binding:"required"`
	Company  string `json:"company"`
	Focus    string `json:"focus"`
}

// PracticeResult holds generated interview practice material
type PracticeResult struct {
	Questions []string `json:"questions"`
	Tips      []string `json:"tips"`
}

// InterviewPractice generates practice interview questions for a position.
// @Summary Generate practice interview questions for a position
// @Tags Assist
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param input body practiceInput true "Position to practice for"
// @Success 200 {object} PracticeResult "Generated questions and tips"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 502 {object} utilities.ErrorResponse "Upstream AI service error"
// @Router /assist/practice [post]
func (ac *AssistController) InterviewPractice(c *gin.Context) {
	if _, err := utilities.ExtractUser(c); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var input practiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	prompt := fmt.Sprintf(`You are an experienced interview coach. Generate practice material for a candidate interviewing for the position below.

		Position: %s
		Company (may be empty): %s
		Focus area (may be empty): %s

		Produce 5 realistic interview questions for this position and 3 short preparation tips.

		Respond ONLY with a valid JSON object in this exact format:
		{
		"questions": ["question 1", "question 2", "question 3", "question 4", "question 5"],
		"tips": ["tip 1", "tip 2", "tip 3"]
		}`,
		input.Position,
		input.Company,
		input.Focus,
	)

	content, err := completeChat(prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate practice questions: %s", err.Error()),
		})
		return
	}

	var result PracticeResult
	if err := decodeModelJSON(content, &result); err != nil {
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse AI response: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

type researchInput struct {
	Company string `json:"company" binding:"required"`
}

// ResearchResult holds a generated company research brief
type ResearchResult struct {
	Summary   string   `json:"summary"`
	Culture   string   `json:"culture"`
	Questions []string `json:"questions"`
}

// CompanyResearch generates a short research brief about a company.
// @Summary Generate a company research brief
// @Tags Assist
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param input body researchInput true "Company to research"
// @Success 200 {object} ResearchResult "Generated research brief"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 502 {object} utilities.ErrorResponse "Upstream AI service error"
// @Router /assist/research [post]
func (ac *AssistController) CompanyResearch(c *gin.Context) {
	if _, err := utilities.ExtractUser(c); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var input researchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	prompt := fmt.Sprintf(`You are a career research assistant. Write a short research brief about the company below for a job seeker preparing an application.

		Company: %s

		Cover what the company does and what its working culture is commonly known for, then suggest 3 thoughtful questions the candidate could ask in an interview.

		Respond ONLY with a valid JSON object in this exact format:
		{
		"summary": "what the company does",
		"culture": "what the culture is known for",
		"questions": ["question 1", "question 2", "question 3"]
		}`,
		input.Company,
	)

	content, err := completeChat(prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate research brief: %s", err.Error()),
		})
		return
	}

	var result ResearchResult
	if err := decodeModelJSON(content, &result); err != nil {
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse AI response: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
