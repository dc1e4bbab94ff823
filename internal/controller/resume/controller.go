// Package resume provides HTTP handlers for resume file upload and download.
package resume

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/utilities"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResumeController handles resume file related endpoints
type ResumeController struct {
	DB *database.DBinstanceStruct
}

// NewResumeController creates a new instance of ResumeController with the provided database connection.
func NewResumeController(db *database.DBinstanceStruct) *ResumeController {
	return &ResumeController{
		DB: db,
	}
}

// UploadResume handles the process of uploading a resume file for a user and
// updating the user's resume reference in the database.
// @Summary Upload resume file
// @Description Only file that smaller than 10 MB with .pdf extension is permitted
// @Tags Resume
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param resume formData file true "Upload your resume file"
// @Success 200 {object} model.User "Successfully upload resume"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 413 {object} utilities.ErrorResponse "File size is larger than 10 MB"
// @Failure 415 {object} utilities.ErrorResponse "File extension is not allowed"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /resume [post]
func (rc *ResumeController) UploadResume(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	if extension != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", extension),
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	file := model.File{
		Content:   fileBytes,
		Extension: extension,
	}
	if err := rc.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store file: %s", err.Error()),
		})
		return
	}

	user.ResumeID = &file.ID
	if err := rc.DB.Model(&user).Update("resume_id", file.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update user information: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetFile serves a stored file by id. Only the owner of the file (through
// their resume reference) or an admin can fetch it.
// @Summary Download stored resume file by id
// @Tags Resume
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "File ID"
// @Success 200 {file} binary "File content"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the file owner"
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /file/{id} [get]
func (rc *ResumeController) GetFile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var file model.File
	if err := rc.DB.Where("id = ?", c.Param("id")).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "File not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	if user.Role != model.RoleAdmin && (user.ResumeID == nil || *user.ResumeID != file.ID) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "User doesn't have permission to access this file",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resume%s", file.Extension))
	c.Data(http.StatusOK, "application/octet-stream", file.Content)
}
