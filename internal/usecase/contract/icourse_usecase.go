package contract

import (
	"context"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

// CourseInput carries the fields an educator supplies when creating or
// updating a course.
type CourseInput struct {
	Title       string
	Description string
	Category    string
	Level       string
	GradeRange  string
	Price       *float64
	Duration    string
	ImageURL    string
}

// LessonInput carries the fields for a new or updated lesson. Pointer fields
// on updates mean "leave unchanged when nil".
type LessonInput struct {
	Title       *string
	Content     *string
	VideoURL    *string
	VideoKey    *string
	DocumentURL *string
	DocumentKey *string
	Duration    *int
	Order       *int
}

// DashboardStats aggregates an educator's (or the whole platform's) numbers.
type DashboardStats struct {
	TotalCourses      int                         `json:"total_courses"`
	TotalEnrollments  int                         `json:"total_enrollments"`
	TotalRevenue      float64                     `json:"total_revenue"`
	TotalEducators    int64                       `json:"total_educators"`
	RecentEnrollments []contract.RecentEnrollment `json:"recent_enrollments"`
}

// ICourseUseCase defines course and lesson management operations.
type ICourseUseCase interface {
	CreateCourse(ctx context.Context, requester *entity.User, in *CourseInput) (*entity.Course, error)
	GetCourse(ctx context.Context, courseID string) (*entity.Course, error)
	UpdateCourse(ctx context.Context, requester *entity.User, courseID string, in *CourseInput) (*entity.Course, error)
	DeleteCourse(ctx context.Context, requester *entity.User, courseID string) error
	// ListCatalog returns the public, active course catalog with educator
	// names resolved.
	ListCatalog(ctx context.Context) ([]contract.CourseWithEducator, error)
	// ListManagedCourses returns every course for admins and only owned
	// courses for educators.
	ListManagedCourses(ctx context.Context, requester *entity.User) ([]entity.Course, error)
	AddLesson(ctx context.Context, requester *entity.User, courseID string, in *LessonInput) (*entity.Lesson, error)
	UpdateLesson(ctx context.Context, requester *entity.User, courseID, lessonID string, in *LessonInput) (*entity.Lesson, error)
	ComputeDashboardStats(ctx context.Context, requester *entity.User) (*DashboardStats, error)
}
