package auth

import (
	"CareerCompass-backend/internal/database"
	"CareerCompass-backend/internal/utilities"
	"context"
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

func TestLocalRegisterHandler_Success(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username": "new_member",
		"password": "ValidPass123",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, resp["access_token"])
}

func TestLocalRegisterHandler_DuplicateUsername(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username": database.TestUserMember1.Username,
		"password": "ValidPass123",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocalRegisterHandler_ShortPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username": "short_pass_member",
		"password": "short",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "8 characters")
}

func TestLocalLoginHandler_Success(t *testing.T) {
	token, err := GetAccessToken(t, testDB, database.TestUserMember1.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ValidatedToken(token)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestLocalLoginHandler_WrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": database.TestUserMember1.Username,
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLocalLoginHandler_UnknownUser(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": "ghost_user",
		"password": "whatever123",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
