package resume

import (
	"CareerCompass-backend/internal/auth"
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/middleware"
	"CareerCompass-backend/internal/model"
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func resumeRouter() *gin.Engine {
	r := gin.Default()
	rc := NewResumeController(testDB)
	authed := r.Group("/", middleware.RequireAuth(testDB))
	authed.POST("/resume", middleware.SizeLimit(10<<20), rc.UploadResume)
	authed.GET("/file/:id", rc.GetFile)
	return r
}

func memberToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestUserMember1.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func uploadFile(t *testing.T, r *gin.Engine, token string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUploadResume_Success(t *testing.T) {
	r := resumeRouter()
	token := memberToken(t)

	content := []byte("%PDF-1.4 test resume body")
	rec := uploadFile(t, r, token, "resume.pdf", content)

	assert.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	assert.NoError(t, testDB.First(&user, "id = ?", database.TestUserMember1.ID).Error)
	assert.NotNil(t, user.ResumeID)

	var file model.File
	assert.NoError(t, testDB.First(&file, *user.ResumeID).Error)
	assert.Equal(t, content, file.Content)
	assert.Equal(t, ".pdf", file.Extension)
}

func TestUploadResume_WrongExtension(t *testing.T) {
	r := resumeRouter()
	token := memberToken(t)

	rec := uploadFile(t, r, token, "resume.docx", []byte("not a pdf"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestGetFile_OwnerCanDownload(t *testing.T) {
	r := resumeRouter()
	token := memberToken(t)

	content := []byte("%PDF-1.4 owned resume")
	rec := uploadFile(t, r, token, "resume.pdf", content)
	assert.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	assert.NoError(t, testDB.First(&user, "id = ?", database.TestUserMember1.ID).Error)
	assert.NotNil(t, user.ResumeID)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/file/%d", *user.ResumeID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	getRec := httptest.NewRecorder()
	r.ServeHTTP(getRec, req)

	assert.Equal(t, http.StatusOK, getRec.Code)
	assert.Equal(t, content, getRec.Body.Bytes())
	assert.Contains(t, getRec.Header().Get("Content-Disposition"), "resume.pdf")
}

func TestGetFile_NotOwnerForbidden(t *testing.T) {
	r := resumeRouter()
	token := memberToken(t)

	rec := uploadFile(t, r, token, "resume.pdf", []byte("%PDF-1.4 private"))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	assert.NoError(t, testDB.First(&user, "id = ?", database.TestUserMember1.ID).Error)

	otherToken, err := auth.GetAccessToken(t, testDB, database.TestUserMember2.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/file/%d", *user.ResumeID), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	getRec := httptest.NewRecorder()
	r.ServeHTTP(getRec, req)

	assert.Equal(t, http.StatusForbidden, getRec.Code)
}

func TestGetFile_NotFound(t *testing.T) {
	r := resumeRouter()
	token := memberToken(t)

	req := httptest.NewRequest(http.MethodGet, "/file/999999", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
