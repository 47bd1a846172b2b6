package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/middleware"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler       *UserHandler
	courseHandler     *CourseHandler
	enrollmentHandler *EnrollmentHandler
	uploadHandler     *UploadHandler
	contactHandler    *ContactHandler
	userUsecase       usecasecontract.IUserUseCase
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	courseUsecase usecasecontract.ICourseUseCase,
	enrollmentUsecase usecasecontract.IEnrollmentUseCase,
	storage contract.IFileStorage,
	mailService contract.IEmailService,
	contactEmail string,
	production bool,
) *Router {
	redactInternals = production
	return &Router{
		userHandler:       NewUserHandler(userUsecase),
		courseHandler:     NewCourseHandler(courseUsecase),
		enrollmentHandler: NewEnrollmentHandler(enrollmentUsecase),
		uploadHandler:     NewUploadHandler(storage),
		contactHandler:    NewContactHandler(mailService, contactEmail),
		userUsecase:       userUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	// a tighter limit on credential endpoints
	authLmt := tollbooth.NewLimiter(2, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	authLmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	authLmt.SetMessage("Too many requests, please try again later.")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	auth.Use(tollbooth_gin.LimitHandler(authLmt))
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/forgot-password", r.userHandler.ForgotPassword)
		auth.POST("/verify-otp", r.userHandler.VerifyOTP)
		auth.POST("/reset-password", r.userHandler.ResetPassword)
	}

	// Public course catalog
	courses := v1.Group("/courses")
	{
		courses.GET("", r.courseHandler.ListCatalog)
		courses.GET("/:courseID", r.courseHandler.GetCourse)
	}

	// Contact form
	v1.POST("/contact", r.contactHandler.Submit)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Enrollment and payment workflow
		protected.POST("/enroll/order", r.enrollmentHandler.CreateOrder)
		protected.POST("/enroll/verify", r.enrollmentHandler.VerifyPayment)
		protected.PUT("/enroll/:courseID/progress", r.enrollmentHandler.UpdateProgress)
		protected.GET("/enroll/my-courses", r.enrollmentHandler.ListEnrolledCourses)

		// Course management (educator or admin; ownership enforced in usecase)
		manage := protected.Group("/")
		manage.Use(middleware.RequireRoles(entity.UserRoleEducator, entity.UserRoleAdmin))
		{
			manage.POST("/courses", r.courseHandler.CreateCourse)
			manage.PUT("/courses/:courseID", r.courseHandler.UpdateCourse)
			manage.DELETE("/courses/:courseID", r.courseHandler.DeleteCourse)
			manage.POST("/courses/:courseID/lessons", r.courseHandler.AddLesson)
			manage.PUT("/courses/:courseID/lessons/:lessonID", r.courseHandler.UpdateLesson)
			manage.GET("/manage/courses", r.courseHandler.ListManagedCourses)
			manage.GET("/manage/stats", r.courseHandler.DashboardStats)
			manage.POST("/upload", r.uploadHandler.Upload)
		}
	}

	// Admin-only surface; re-resolves the caller from the token on every
	// request instead of trusting upstream middleware.
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminOnly(r.userUsecase))
	{
		admin.GET("/courses", r.courseHandler.ListManagedCourses)
		admin.GET("/stats", r.courseHandler.DashboardStats)
	}
}
