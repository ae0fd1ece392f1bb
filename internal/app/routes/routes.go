package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/controllers"
	"github.com/learnhub/learnhub/internal/middleware"
	"github.com/learnhub/learnhub/internal/pkg/session"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authController *controllers.AuthController,
	sessions session.Store,
	logger zerolog.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/featured", courseController.GetFeaturedCourses)
		courses.GET("/new", courseController.GetNewCourses)
		courses.GET("/:idOrSlug", courseController.GetCourse)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/verify-email", authController.VerifyEmail)
		auth.POST("/resend-verification", authController.ResendVerification)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/forgot-password/verify-otp", authController.ForgotPasswordVerifyOTP)
		auth.POST("/forgot-password/resend", authController.ForgotPasswordResend)
		auth.POST("/forgot-password/reset", authController.ForgotPasswordReset)
		auth.POST("/forgot-password/back", authController.ForgotPasswordBack)
	}

	// --- Guarded actions ---
	guarded := v1.Group("")
	guarded.Use(middleware.RequireSession(sessions, logger))
	{
		guarded.POST("/courses/:idOrSlug/enroll", courseController.Enroll)
	}
}
