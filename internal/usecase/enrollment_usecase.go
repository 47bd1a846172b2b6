package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/metrics"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// FreeEnrollmentOrderID is the sentinel order id clients present when
// enrolling in a free course. It bypasses the gateway and signature check.
const FreeEnrollmentOrderID = "free_enrollment"

// EnrollmentUsecase implements the IEnrollmentUseCase interface.
type EnrollmentUsecase struct {
	courseRepo contract.ICourseRepository
	userRepo   contract.IUserRepository
	gateway    contract.IPaymentGateway
	logger     usecasecontract.IAppLogger
	config     usecasecontract.IConfigProvider
}

// NewEnrollmentUsecase creates a new EnrollmentUsecase instance.
func NewEnrollmentUsecase(
	courseRepo contract.ICourseRepository,
	userRepo contract.IUserRepository,
	gateway contract.IPaymentGateway,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *EnrollmentUsecase {
	return &EnrollmentUsecase{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		gateway:    gateway,
		logger:     logger,
		config:     cfg,
	}
}

var _ usecasecontract.IEnrollmentUseCase = (*EnrollmentUsecase)(nil)

// CreateOrder requests a gateway order for the course price in minor
// currency units. It writes nothing to the store; the enrollment record is
// created only after verification.
func (uc *EnrollmentUsecase) CreateOrder(ctx context.Context, student *entity.User, courseID string) (*contract.GatewayOrder, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, entity.ErrCourseNotFound
	}

	if enr := course.EnrollmentOf(student.ID); enr != nil && enr.Status == entity.PaymentCompleted {
		return nil, entity.ErrAlreadyEnrolled
	}

	if course.Price <= 0 {
		return &contract.GatewayOrder{
			OrderID:  FreeEnrollmentOrderID,
			Amount:   0,
			Currency: uc.config.GetCurrency(),
		}, nil
	}

	order, err := uc.gateway.CreateOrder(ctx, &contract.OrderRequest{
		AmountMinorUnits: int64(course.Price * 100),
		Currency:         uc.config.GetCurrency(),
		ReceiptID:        fmt.Sprintf("course_%s", course.ID),
		Notes: map[string]string{
			"course_id":  course.ID,
			"student_id": student.ID,
		},
	})
	if err != nil {
		uc.logger.Errorf("failed to create gateway order for course %s: %v", courseID, err)
		return nil, fmt.Errorf("%w: payment gateway", entity.ErrUpstream)
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// VerifyAndEnroll validates the payment proof and appends a completed
// enrollment record exactly once. The append is a single guarded update in
// the repository, so two concurrent verifiers for the same (course, student)
// cannot both win.
func (uc *EnrollmentUsecase) VerifyAndEnroll(ctx context.Context, student *entity.User, courseID, orderID, paymentID, signature string) (*usecasecontract.EnrollmentSummary, error) {
	if orderID != FreeEnrollmentOrderID {
		if !uc.gateway.VerifySignature(orderID, paymentID, signature) {
			metrics.PaymentVerificationsFailed.Inc()
			return nil, entity.ErrInvalidSignature
		}
	}

	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, entity.ErrCourseNotFound
	}
	if _, err := uc.userRepo.GetUserByID(ctx, student.ID); err != nil {
		return nil, entity.ErrUserNotFound
	}

	enrollment := &entity.Enrollment{
		StudentID:  student.ID,
		EnrolledAt: time.Now(),
		PaymentID:  paymentID,
		Status:     entity.PaymentCompleted,
		Progress:   0,
	}

	if err := uc.courseRepo.AppendEnrollment(ctx, courseID, enrollment); err != nil {
		if errors.Is(err, entity.ErrAlreadyEnrolled) {
			return nil, entity.ErrAlreadyEnrolled
		}
		if errors.Is(err, entity.ErrCourseNotFound) {
			return nil, entity.ErrCourseNotFound
		}
		// A verified payment with no persisted enrollment must surface.
		uc.logger.Errorf("verified payment %s but enrollment write failed for course %s student %s: %v",
			paymentID, courseID, student.ID, err)
		return nil, errors.New(errInternalServer)
	}

	metrics.EnrollmentsCompleted.Inc()
	return &usecasecontract.EnrollmentSummary{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		StudentName: student.Name,
		EnrolledAt:  enrollment.EnrolledAt,
		PaymentID:   paymentID,
	}, nil
}

// UpdateProgress clamps the new progress into [0,100] and writes it in
// place. Only a completed enrollment may be updated.
func (uc *EnrollmentUsecase) UpdateProgress(ctx context.Context, student *entity.User, courseID string, progress int) (int, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	err := uc.courseRepo.UpdateEnrollmentProgress(ctx, courseID, student.ID, progress)
	if err != nil {
		if errors.Is(err, entity.ErrNotEnrolled) {
			return 0, entity.ErrNotEnrolled
		}
		if errors.Is(err, entity.ErrCourseNotFound) {
			return 0, entity.ErrCourseNotFound
		}
		uc.logger.Errorf("failed to update progress for course %s student %s: %v", courseID, student.ID, err)
		return 0, errors.New(errInternalServer)
	}
	return progress, nil
}

// ListEnrolledCourses returns courses where the student holds a completed
// enrollment, annotated with that student's own enrollment state.
func (uc *EnrollmentUsecase) ListEnrolledCourses(ctx context.Context, student *entity.User) ([]usecasecontract.EnrolledCourse, error) {
	courses, err := uc.courseRepo.ListCoursesEnrolledBy(ctx, student.ID)
	if err != nil {
		uc.logger.Errorf("failed to list enrolled courses for student %s: %v", student.ID, err)
		return nil, errors.New(errInternalServer)
	}

	enrolled := make([]usecasecontract.EnrolledCourse, 0, len(courses))
	for i := range courses {
		course := courses[i]
		enr := course.EnrollmentOf(student.ID)
		if enr == nil || enr.Status != entity.PaymentCompleted {
			continue
		}
		annotated := usecasecontract.EnrolledCourse{
			EnrolledAt: enr.EnrolledAt,
			Progress:   enr.Progress,
			PaymentID:  enr.PaymentID,
		}
		// Strip the full enrollment list; other students' records are not
		// the caller's business.
		course.EnrolledStudents = nil
		annotated.Course = course
		enrolled = append(enrolled, annotated)
	}
	return enrolled, nil
}
