package application

import (
	"CareerCompass-backend/internal/auth"
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/middleware"
	"CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/testutil"
	"context"
	"fmt"
	"net/http"
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

func applicationRouter() *gin.Engine {
	r := gin.Default()
	ac := &ApplicationController{DB: testDB}
	r.POST("/application", middleware.RequireAuth(testDB), ac.CreateApplication)
	r.GET("/application", middleware.RequireAuth(testDB), ac.GetApplications)
	r.PATCH("/application/:id", middleware.RequireAuth(testDB), ac.EditApplication)
	r.PUT("/application/:id/interview", middleware.RequireAuth(testDB), ac.ScheduleInterview)
	r.DELETE("/application/:id", middleware.RequireAuth(testDB), ac.DeleteApplication)
	return r
}

func memberToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestUserMember1.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestCreateApplication_Success(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	body := gin.H{
		"company":  "TechNova",
		"position": "Backend Engineer",
		"status":   "offer", // must be ignored, status always starts at applied
	}

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/application", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "TechNova", resp["company"])
	assert.Equal(t, model.StatusApplied, resp["status"])
	assert.NotNil(t, resp["applied_date"])
}

func TestCreateApplication_MissingCompany(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	rec, _ := testutil.MakeJSONRequest(gin.H{"position": "Engineer"}, token, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateApplication_InvalidResumeID(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	body := gin.H{
		"company":   "TechNova",
		"position":  "Backend Engineer",
		"resume_id": 999999,
	}

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/application", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "ResumeID")
}

func TestEditApplication_StatusUpdate(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	seeded := seedApplication(t, "EditCo", model.StatusApplied)

	rec, resp := testutil.MakeJSONRequest(
		gin.H{"status": model.StatusPhoneScreen},
		token, r, fmt.Sprintf("/application/%d", seeded.ID), http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusPhoneScreen, resp["status"])
	// untouched fields survive the merge
	assert.Equal(t, "EditCo", resp["company"])
}

func TestEditApplication_UnknownStatus(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	seeded := seedApplication(t, "BadStatusCo", model.StatusApplied)

	rec, resp := testutil.MakeJSONRequest(
		gin.H{"status": "ghosted"},
		token, r, fmt.Sprintf("/application/%d", seeded.ID), http.MethodPatch)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Unknown status")
}

func TestEditApplication_NotOwned(t *testing.T) {
	r := applicationRouter()

	otherToken, err := auth.GetAccessToken(t, testDB, database.TestUserMember2.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	seeded := seedApplication(t, "PrivateCo", model.StatusApplied)

	rec, _ := testutil.MakeJSONRequest(
		gin.H{"status": model.StatusOffer},
		otherToken, r, fmt.Sprintf("/application/%d", seeded.ID), http.MethodPatch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleInterview_SetAndClear(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	seeded := seedApplication(t, "InterviewCo", model.StatusPhoneScreen)
	when := time.Now().AddDate(0, 0, 3).UTC().Format(time.RFC3339)

	rec, _ := testutil.MakeJSONRequest(
		gin.H{"interview_date": when},
		token, r, fmt.Sprintf("/application/%d/interview", seeded.ID), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.Application
	assert.NoError(t, testDB.First(&stored, seeded.ID).Error)
	assert.NotNil(t, stored.InterviewDate)

	rec, _ = testutil.MakeJSONRequest(
		gin.H{"interview_date": nil},
		token, r, fmt.Sprintf("/application/%d/interview", seeded.ID), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, testDB.First(&stored, seeded.ID).Error)
	assert.Nil(t, stored.InterviewDate)
}

func TestGetApplications_FilterByStatus(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	seedApplication(t, "FilterCo", model.StatusOnsite)

	rec, resp := testutil.MakeJSONListRequest(nil, token, r, "/application?status="+model.StatusOnsite, http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp)
	for _, item := range resp {
		assert.Equal(t, model.StatusOnsite, item["status"])
	}
}

func TestDeleteApplication(t *testing.T) {
	r := applicationRouter()
	token := memberToken(t)

	seeded := seedApplication(t, "DeleteCo", model.StatusApplied)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, fmt.Sprintf("/application/%d", seeded.ID), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	testDB.Model(&model.Application{}).Where("id = ?", seeded.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

// seedApplication inserts an application owned by TestUserMember1 directly.
func seedApplication(t *testing.T, company string, status string) model.Application {
	t.Helper()
	app := model.Application{
		UserID: database.TestUserMember1.ID,
		EditableApplicationInfo: model.EditableApplicationInfo{
			Company:     company,
			Position:    "Engineer",
			Status:      status,
			AppliedDate: time.Now(),
		},
	}
	if err := testDB.Create(&app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return app
}
