package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

type CourseHandler struct {
	courseUsecase usecasecontract.ICourseUseCase
}

func NewCourseHandler(courseUsecase usecasecontract.ICourseUseCase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

func courseInputFromRequest(req *dto.CourseRequest) *usecasecontract.CourseInput {
	return &usecasecontract.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		GradeRange:  req.GradeRange,
		Price:       req.Price,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
	}
}

func lessonInputFromRequest(req *dto.LessonRequest) *usecasecontract.LessonInput {
	return &usecasecontract.LessonInput{
		Title:       req.Title,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		VideoKey:    req.VideoKey,
		DocumentURL: req.DocumentURL,
		DocumentKey: req.DocumentKey,
		Duration:    req.Duration,
		Order:       req.Order,
	}
}

// ListCatalog handles the public, unauthenticated course listing
func (h *CourseHandler) ListCatalog(c *gin.Context) {
	catalog, err := h.courseUsecase.ListCatalog(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, catalog)
}

// GetCourse handles the public course detail view
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUsecase.GetCourse(c.Request.Context(), c.Param("courseID"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, course)
}

// CreateCourse handles course creation by an educator or admin
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), user, courseInputFromRequest(&req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, course)
}

// UpdateCourse handles course updates by the owner or admin
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), user, c.Param("courseID"), courseInputFromRequest(&req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, course)
}

// DeleteCourse handles course deletion by the owner or admin
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.courseUsecase.DeleteCourse(c.Request.Context(), user, c.Param("courseID")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Course deleted successfully")
}

// ListManagedCourses handles the management listing (all for admin, own for educator)
func (h *CourseHandler) ListManagedCourses(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	courses, err := h.courseUsecase.ListManagedCourses(c.Request.Context(), user)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, courses)
}

// AddLesson handles appending a lesson to a course
func (h *CourseHandler) AddLesson(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.LessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson, err := h.courseUsecase.AddLesson(c.Request.Context(), user, c.Param("courseID"), lessonInputFromRequest(&req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, lesson)
}

// UpdateLesson handles partial updates of an embedded lesson
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.LessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson, err := h.courseUsecase.UpdateLesson(c.Request.Context(), user, c.Param("courseID"), c.Param("lessonID"), lessonInputFromRequest(&req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// DashboardStats handles the management dashboard aggregation
func (h *CourseHandler) DashboardStats(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	stats, err := h.courseUsecase.ComputeDashboardStats(c.Request.Context(), user)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
