package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// MockCourseUsecase is a mock implementation of the course usecase interface
type MockCourseUsecase struct {
	// Control mock behavior
	ShouldFailCreateCourse bool
	ShouldFailGetCourse    bool
	ShouldFailUpdateCourse bool
	ShouldFailDeleteCourse bool
	ShouldFailListCatalog  bool
	ShouldFailListManaged  bool
	ShouldFailAddLesson    bool
	ShouldFailUpdateLesson bool
	ShouldFailStats        bool

	// Return values
	MockCourse entity.Course
	MockLesson entity.Lesson
	MockStats  usecasecontract.DashboardStats
}

var _ usecasecontract.ICourseUseCase = (*MockCourseUsecase)(nil)

func NewMockCourseUsecase() *MockCourseUsecase {
	return &MockCourseUsecase{
		MockCourse: entity.Course{
			ID:         "mock-course-id",
			Title:      "Intro to Algebra",
			Category:   entity.CategoryMathematics,
			Level:      entity.LevelBeginner,
			Price:      100,
			EducatorID: "mock-educator-id",
			IsActive:   true,
			CreatedAt:  time.Now(),
		},
		MockLesson: entity.Lesson{
			ID:    "mock-lesson-id",
			Title: "Variables",
			Order: 1,
		},
	}
}

func (m *MockCourseUsecase) CreateCourse(ctx context.Context, requester *entity.User, in *usecasecontract.CourseInput) (*entity.Course, error) {
	if m.ShouldFailCreateCourse {
		return nil, errors.New("course creation failed")
	}
	course := m.MockCourse
	course.Title = in.Title
	return &course, nil
}

func (m *MockCourseUsecase) GetCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	if m.ShouldFailGetCourse {
		return nil, entity.ErrCourseNotFound
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) UpdateCourse(ctx context.Context, requester *entity.User, courseID string, in *usecasecontract.CourseInput) (*entity.Course, error) {
	if m.ShouldFailUpdateCourse {
		return nil, entity.ErrForbidden
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) DeleteCourse(ctx context.Context, requester *entity.User, courseID string) error {
	if m.ShouldFailDeleteCourse {
		return entity.ErrForbidden
	}
	return nil
}

func (m *MockCourseUsecase) ListCatalog(ctx context.Context) ([]contract.CourseWithEducator, error) {
	if m.ShouldFailListCatalog {
		return nil, errors.New("catalog listing failed")
	}
	return []contract.CourseWithEducator{{Course: m.MockCourse, EducatorName: "Mock Educator"}}, nil
}

func (m *MockCourseUsecase) ListManagedCourses(ctx context.Context, requester *entity.User) ([]entity.Course, error) {
	if m.ShouldFailListManaged {
		return nil, errors.New("managed course listing failed")
	}
	return []entity.Course{m.MockCourse}, nil
}

func (m *MockCourseUsecase) AddLesson(ctx context.Context, requester *entity.User, courseID string, in *usecasecontract.LessonInput) (*entity.Lesson, error) {
	if m.ShouldFailAddLesson {
		return nil, entity.ErrCourseNotFound
	}
	return &m.MockLesson, nil
}

func (m *MockCourseUsecase) UpdateLesson(ctx context.Context, requester *entity.User, courseID, lessonID string, in *usecasecontract.LessonInput) (*entity.Lesson, error) {
	if m.ShouldFailUpdateLesson {
		return nil, entity.ErrLessonNotFound
	}
	return &m.MockLesson, nil
}

func (m *MockCourseUsecase) ComputeDashboardStats(ctx context.Context, requester *entity.User) (*usecasecontract.DashboardStats, error) {
	if m.ShouldFailStats {
		return nil, errors.New("stats computation failed")
	}
	return &m.MockStats, nil
}
