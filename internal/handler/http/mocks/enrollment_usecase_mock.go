package mocks

import (
	"context"
	"time"

	domaincontract "github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// MockEnrollmentUsecase is a mock implementation of the enrollment usecase interface
type MockEnrollmentUsecase struct {
	// Control mock behavior
	ShouldFailCreateOrder    bool
	ShouldFailVerify         bool
	ShouldFailUpdateProgress bool
	ShouldFailListEnrolled   bool

	// Return values
	MockOrder   domaincontract.GatewayOrder
	MockSummary usecasecontract.EnrollmentSummary
}

var _ usecasecontract.IEnrollmentUseCase = (*MockEnrollmentUsecase)(nil)

func NewMockEnrollmentUsecase() *MockEnrollmentUsecase {
	return &MockEnrollmentUsecase{
		MockOrder: domaincontract.GatewayOrder{
			OrderID:  "order_mock123",
			Amount:   10000,
			Currency: "INR",
		},
		MockSummary: usecasecontract.EnrollmentSummary{
			CourseID:    "mock-course-id",
			CourseTitle: "Intro to Algebra",
			StudentName: "Test User",
			EnrolledAt:  time.Now(),
			PaymentID:   "pay_mock123",
		},
	}
}

func (m *MockEnrollmentUsecase) CreateOrder(ctx context.Context, student *entity.User, courseID string) (*domaincontract.GatewayOrder, error) {
	if m.ShouldFailCreateOrder {
		return nil, entity.ErrCourseNotFound
	}
	return &m.MockOrder, nil
}

func (m *MockEnrollmentUsecase) VerifyAndEnroll(ctx context.Context, student *entity.User, courseID, orderID, paymentID, signature string) (*usecasecontract.EnrollmentSummary, error) {
	if m.ShouldFailVerify {
		return nil, entity.ErrInvalidSignature
	}
	return &m.MockSummary, nil
}

func (m *MockEnrollmentUsecase) UpdateProgress(ctx context.Context, student *entity.User, courseID string, progress int) (int, error) {
	if m.ShouldFailUpdateProgress {
		return 0, entity.ErrNotEnrolled
	}
	return progress, nil
}

func (m *MockEnrollmentUsecase) ListEnrolledCourses(ctx context.Context, student *entity.User) ([]usecasecontract.EnrolledCourse, error) {
	if m.ShouldFailListEnrolled {
		return nil, entity.ErrUserNotFound
	}
	return []usecasecontract.EnrolledCourse{}, nil
}
