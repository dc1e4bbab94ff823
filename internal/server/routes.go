// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"CareerCompass-backend/internal/auth"
	"CareerCompass-backend/internal/controller/analytics"
	"CareerCompass-backend/internal/controller/application"
	"CareerCompass-backend/internal/controller/assist"
	"CareerCompass-backend/internal/controller/plan"
	"CareerCompass-backend/internal/controller/resume"
	"CareerCompass-backend/internal/middleware"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "CareerCompass-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	googleOauth := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.openid",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}

	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v2/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	applicationCtrl := application.NewApplicationController(s.DB)
	analyticsCtrl := analytics.NewAnalyticsController(s.DB)
	planCtrl := plan.NewPlanController(s.DB)
	resumeCtrl := resume.NewResumeController(s.DB)
	assistCtrl := assist.NewAssistController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("google", gAuth.GoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)

			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.EnvRateLimitMiddleware())

			applicationRoute := needAuth.Group("/application")
			{
				applicationRoute.POST("", applicationCtrl.CreateApplication)
				applicationRoute.GET("", applicationCtrl.GetApplications)
				applicationRoute.PATCH(":id", applicationCtrl.EditApplication)
				applicationRoute.PUT(":id/interview", applicationCtrl.ScheduleInterview)
				applicationRoute.DELETE(":id", applicationCtrl.DeleteApplication)
			}

			analyticsRoute := needAuth.Group("/analytics")
			{
				analyticsRoute.GET("status", analyticsCtrl.GetStatusCounts)
				analyticsRoute.GET("weekly", analyticsCtrl.GetWeeklyStats)
				analyticsRoute.GET("companies", analyticsCtrl.GetCompanyStats)
				analyticsRoute.GET("offers", analyticsCtrl.GetOfferStats)
				analyticsRoute.GET("dashboard", analyticsCtrl.GetDashboard)
			}

			needAuth.GET("/calendar", analyticsCtrl.GetCalendar)

			planRoute := needAuth.Group("/plan")
			{
				planRoute.POST("", planCtrl.CreatePlan)
				planRoute.GET("", planCtrl.GetPlans)
				planRoute.PATCH(":id/milestone/:milestone_id", planCtrl.CompleteMilestone)
				planRoute.DELETE(":id", planCtrl.DeletePlan)
			}

			needAuth.POST("/resume", middleware.SizeLimit(10<<20), resumeCtrl.UploadResume)
			needAuth.GET("/file/:id", resumeCtrl.GetFile)

			assistRoute := needAuth.Group("/assist")
			{
				assistRoute.POST("practice", assistCtrl.InterviewPractice)
				assistRoute.POST("research", assistCtrl.CompanyResearch)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
