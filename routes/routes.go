package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/hoa-portal/api-go/config"
	"github.com/hoa-portal/api-go/controllers"
	"github.com/hoa-portal/api-go/middleware"
	"github.com/hoa-portal/api-go/storage"
	"github.com/hoa-portal/api-go/store"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, objects storage.ObjectStore, speech *config.SpeechConfig) {
	users := store.NewUserDirectory(db)
	reports := store.NewReportStore(db)

	authController := controllers.NewAuthController(users)
	complaintController := controllers.NewComplaintController(users, reports, objects)
	adminController := controllers.NewAdminController(users, reports, objects)
	speechController := controllers.NewSpeechController(speech)

	// Portal pages
	r.Static("/public", "./public")
	for route, page := range map[string]string{
		"/":          "index.html",
		"/admin":     "admin.html",
		"/homeowner": "homeowner.html",
		"/auth":      "auth.html",
	} {
		page := page
		r.GET(route, func(c *gin.Context) {
			c.File(filepath.Join("public", page))
		})
	}

	// Auth
	r.POST("/signin", authController.Signin)
	r.POST("/signup", authController.Signup)

	// Complaints
	r.POST("/submitComplaint", complaintController.SubmitComplaint)
	r.GET("/getComplaints", complaintController.GetComplaints)
	r.GET("/getRecentComplaints", complaintController.GetRecentComplaints)

	// Speech
	r.POST("/speech/transcribe", speechController.Transcribe)

	// Admin console
	api := r.Group("/api")
	{
		api.GET("/reports", adminController.ListReports)
		api.GET("/users/:id", adminController.GetUser)
		api.GET("/images/:ids", adminController.ListImages)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/listStaff/:group", adminController.ListStaff)
		admin.POST("/comment/:reportId", adminController.Comment)
		admin.POST("/close/:reportId", adminController.Close)
	}
}
