package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

// In-memory fakes for the repository and service contracts. The course repo
// serializes writes with a mutex so the concurrency tests exercise the same
// append-once guarantee the real guarded update provides.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrEmailTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, entity.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) SetResetOTP(ctx context.Context, id string, otpHash string, expire time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.ResetOTPHash = otpHash
	u.ResetOTPExpire = expire
	return nil
}

func (r *fakeUserRepo) SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.ResetTokenHash = tokenHash
	u.ResetTokenExpire = expire
	return nil
}

func (r *fakeUserRepo) ClearResetArtifacts(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.ResetOTPHash = ""
	u.ResetOTPExpire = time.Time{}
	u.ResetTokenHash = ""
	u.ResetTokenExpire = time.Time{}
	return nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[string]*entity.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*entity.Course{}}
}

func (r *fakeCourseRepo) put(course *entity.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *course
	r.courses[course.ID] = &cp
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, course *entity.Course) error {
	r.put(course)
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, entity.ErrCourseNotFound
	}
	cp := *c
	cp.Lessons = append([]entity.Lesson(nil), c.Lessons...)
	cp.EnrolledStudents = append([]entity.Enrollment(nil), c.EnrolledStudents...)
	return &cp, nil
}

func (r *fakeCourseRepo) ListCourses(ctx context.Context, educatorID string) ([]entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Course
	for _, c := range r.courses {
		if educatorID == "" || c.EducatorID == educatorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) ListActiveCoursesWithEducator(ctx context.Context) ([]contract.CourseWithEducator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []contract.CourseWithEducator
	for _, c := range r.courses {
		if c.IsActive {
			out = append(out, contract.CourseWithEducator{Course: *c, EducatorName: "Educator"})
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) UpdateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[course.ID]; !ok {
		return nil, entity.ErrCourseNotFound
	}
	cp := *course
	r.courses[course.ID] = &cp
	return course, nil
}

func (r *fakeCourseRepo) DeleteCourse(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return entity.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) AddLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[courseID]
	if !ok {
		return entity.ErrCourseNotFound
	}
	c.Lessons = append(c.Lessons, *lesson)
	return nil
}

func (r *fakeCourseRepo) UpdateLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[courseID]
	if !ok {
		return entity.ErrCourseNotFound
	}
	for i := range c.Lessons {
		if c.Lessons[i].ID == lesson.ID {
			c.Lessons[i] = *lesson
			return nil
		}
	}
	return entity.ErrLessonNotFound
}

func (r *fakeCourseRepo) AppendEnrollment(ctx context.Context, courseID string, enrollment *entity.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[courseID]
	if !ok {
		return entity.ErrCourseNotFound
	}
	for i := range c.EnrolledStudents {
		if c.EnrolledStudents[i].StudentID == enrollment.StudentID {
			return entity.ErrAlreadyEnrolled
		}
	}
	c.EnrolledStudents = append(c.EnrolledStudents, *enrollment)
	c.TotalStudents++
	return nil
}

func (r *fakeCourseRepo) UpdateEnrollmentProgress(ctx context.Context, courseID, studentID string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[courseID]
	if !ok {
		return entity.ErrCourseNotFound
	}
	for i := range c.EnrolledStudents {
		enr := &c.EnrolledStudents[i]
		if enr.StudentID == studentID && enr.Status == entity.PaymentCompleted {
			enr.Progress = progress
			return nil
		}
	}
	return entity.ErrNotEnrolled
}

func (r *fakeCourseRepo) ListCoursesEnrolledBy(ctx context.Context, studentID string) ([]entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Course
	for _, c := range r.courses {
		for i := range c.EnrolledStudents {
			if c.EnrolledStudents[i].StudentID == studentID && c.EnrolledStudents[i].Status == entity.PaymentCompleted {
				cp := *c
				cp.EnrolledStudents = append([]entity.Enrollment(nil), c.EnrolledStudents...)
				out = append(out, cp)
				break
			}
		}
	}
	return out, nil
}

var _ contract.ICourseRepository = (*fakeCourseRepo)(nil)

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "bcrypt$" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "bcrypt$"+password != hashedPassword {
		return entity.ErrInvalidCredentials
	}
	return nil
}

func (fakeHasher) HashString(s string) string { return "sha$" + s }

func (f fakeHasher) CheckHash(s, hash string) bool { return f.HashString(s) == hash }

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "token|" + userID + "|" + string(role), nil
}

func (fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, entity.ErrInvalidToken
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2])}, nil
}

type fakeMailService struct {
	mu   sync.Mutex
	sent []struct{ To, Subject, Body string }
}

func (m *fakeMailService) SendEmail(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, struct{ To, Subject, Body string }{to, subject, body})
	return nil
}

type fakeLogger struct{}

func (fakeLogger) Debugf(format string, args ...interface{}) {}
func (fakeLogger) Infof(format string, args ...interface{})  {}
func (fakeLogger) Warnf(format string, args ...interface{})  {}
func (fakeLogger) Errorf(format string, args ...interface{}) {}
func (fakeLogger) Fatalf(format string, args ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string               { return "http://localhost:8080" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration { return time.Hour }
func (fakeConfig) GetResetOTPExpiry() time.Duration    { return 10 * time.Minute }
func (fakeConfig) GetResetTokenExpiry() time.Duration  { return 30 * time.Minute }
func (fakeConfig) GetCurrency() string                 { return "INR" }
func (fakeConfig) IsProduction() bool                  { return false }

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type fakeUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("uuid-%04d", g.n)
}

type fakeRandomGen struct {
	otp   string
	token string
}

func (g *fakeRandomGen) GenerateRandomToken(n int) (string, error) {
	if g.token != "" {
		return g.token, nil
	}
	return "raw-reset-token", nil
}

func (g *fakeRandomGen) GenerateOTP() (string, error) {
	if g.otp != "" {
		return g.otp, nil
	}
	return "123456", nil
}

type fakeGateway struct {
	mu          sync.Mutex
	orderCalls  int
	verifyCalls int
	failOrder   bool
	validSig    string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req *contract.OrderRequest) (*contract.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orderCalls++
	if g.failOrder {
		return nil, fmt.Errorf("gateway unavailable")
	}
	return &contract.GatewayOrder{
		OrderID:  "order_test123",
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verifyCalls++
	return signature == g.validSig
}
