package contract

import (
	"context"
	"time"

	domaincontract "github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

// EnrollmentSummary is returned after a verified enrollment write.
type EnrollmentSummary struct {
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	StudentName string    `json:"student_name"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	PaymentID   string    `json:"payment_id,omitempty"`
}

// EnrolledCourse annotates a course with the requesting student's own
// enrollment state, not the full enrollment list of other students.
type EnrolledCourse struct {
	Course     entity.Course `json:"course"`
	EnrolledAt time.Time     `json:"enrolled_at"`
	Progress   int           `json:"progress"`
	PaymentID  string        `json:"payment_id,omitempty"`
}

// IEnrollmentUseCase defines the payment-gated enrollment workflow.
type IEnrollmentUseCase interface {
	// CreateOrder requests a gateway order for the course price. Free
	// courses short-circuit with the free-enrollment sentinel order id and
	// no gateway call.
	CreateOrder(ctx context.Context, student *entity.User, courseID string) (*domaincontract.GatewayOrder, error)
	// VerifyAndEnroll validates the payment proof (skipped for the free
	// sentinel) and appends a completed enrollment exactly once.
	VerifyAndEnroll(ctx context.Context, student *entity.User, courseID, orderID, paymentID, signature string) (*EnrollmentSummary, error)
	// UpdateProgress clamps progress into [0,100] and writes it in place.
	UpdateProgress(ctx context.Context, student *entity.User, courseID string, progress int) (int, error)
	ListEnrolledCourses(ctx context.Context, student *entity.User) ([]EnrolledCourse, error)
}
