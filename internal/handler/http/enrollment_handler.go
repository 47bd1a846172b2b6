package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecasecontract.IEnrollmentUseCase
}

func NewEnrollmentHandler(enrollmentUsecase usecasecontract.IEnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentUsecase: enrollmentUsecase}
}

// CreateOrder handles payment order creation for a course
func (h *EnrollmentHandler) CreateOrder(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateOrderRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	order, err := h.enrollmentUsecase.CreateOrder(c.Request.Context(), user, req.CourseID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, order)
}

// VerifyPayment handles the gateway callback payload and writes the enrollment
func (h *EnrollmentHandler) VerifyPayment(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.VerifyPaymentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	summary, err := h.enrollmentUsecase.VerifyAndEnroll(c.Request.Context(), user, req.CourseID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

// UpdateProgress handles in-place progress updates on an enrollment
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProgressRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	progress, err := h.enrollmentUsecase.UpdateProgress(c.Request.Context(), user, c.Param("courseID"), *req.Progress)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"progress": progress})
}

// ListEnrolledCourses handles the student's own enrolled-course listing
func (h *EnrollmentHandler) ListEnrolledCourses(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	enrolled, err := h.enrollmentUsecase.ListEnrolledCourses(c.Request.Context(), user)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, enrolled)
}
