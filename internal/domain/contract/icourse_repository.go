package contract

import (
	"context"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

// CourseWithEducator pairs a course with its educator's display name for
// public listings. The educator's password hash never leaves the repository.
type CourseWithEducator struct {
	entity.Course `bson:",inline"`
	EducatorName  string `bson:"educator_name" json:"educator_name"`
}

// RecentEnrollment is a flattened enrollment row for dashboard views.
type RecentEnrollment struct {
	CourseID    string            `json:"course_id"`
	CourseTitle string            `json:"course_title"`
	Enrollment  entity.Enrollment `json:"enrollment"`
}

type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	// ListCourses returns all courses, or only those owned by educatorID
	// when it is non-empty.
	ListCourses(ctx context.Context, educatorID string) ([]entity.Course, error)
	// ListActiveCoursesWithEducator returns the public catalog with educator
	// names resolved via lookup.
	ListActiveCoursesWithEducator(ctx context.Context) ([]CourseWithEducator, error)
	UpdateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	// AddLesson appends a lesson to the course's embedded lesson list.
	AddLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error
	// UpdateLesson replaces the embedded lesson matching lesson.ID.
	UpdateLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error

	// AppendEnrollment atomically appends an enrollment record unless one
	// already exists for the student, and moves the total_students counter
	// in the same operation. Returns entity.ErrAlreadyEnrolled when
	// the guard rejects the write and entity.ErrCourseNotFound when the
	// course is absent.
	AppendEnrollment(ctx context.Context, courseID string, enrollment *entity.Enrollment) error
	// UpdateEnrollmentProgress writes the progress of the student's
	// completed enrollment in place. Returns entity.ErrNotEnrolled when no
	// completed enrollment matches.
	UpdateEnrollmentProgress(ctx context.Context, courseID, studentID string, progress int) error
	// ListCoursesEnrolledBy returns courses where the student holds a
	// completed enrollment.
	ListCoursesEnrolledBy(ctx context.Context, studentID string) ([]entity.Course, error)
}
