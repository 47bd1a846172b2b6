package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// CourseUsecase implements the ICourseUseCase interface.
type CourseUsecase struct {
	courseRepo    contract.ICourseRepository
	userRepo      contract.IUserRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	cache         usecasecontract.ICourseCache
}

// NewCourseUsecase creates a new CourseUsecase instance.
func NewCourseUsecase(
	courseRepo contract.ICourseRepository,
	userRepo contract.IUserRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CourseUsecase {
	return &CourseUsecase{
		courseRepo:    courseRepo,
		userRepo:      userRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

var _ usecasecontract.ICourseUseCase = (*CourseUsecase)(nil)

// SetCourseCache wires an optional catalog cache.
func (uc *CourseUsecase) SetCourseCache(cache usecasecontract.ICourseCache) {
	uc.cache = cache
}

// canManage is the single authorization rule for course mutation: admins
// always may, educators only on courses they own.
func canManage(requester *entity.User, course *entity.Course) bool {
	if requester.Role == entity.UserRoleAdmin {
		return true
	}
	return requester.Role == entity.UserRoleEducator && course.EducatorID == requester.ID
}

func validateCourseInput(in *usecasecontract.CourseInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if !entity.ValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", entity.ErrValidation, in.Category)
	}
	if !entity.ValidLevel(in.Level) {
		return fmt.Errorf("%w: unknown level %q", entity.ErrValidation, in.Level)
	}
	return nil
}

// CreateCourse persists a new course owned by the requester.
func (uc *CourseUsecase) CreateCourse(ctx context.Context, requester *entity.User, in *usecasecontract.CourseInput) (*entity.Course, error) {
	if requester.Role != entity.UserRoleEducator && requester.Role != entity.UserRoleAdmin {
		return nil, entity.ErrForbidden
	}
	if err := validateCourseInput(in); err != nil {
		return nil, err
	}

	// Invalid or missing price means free.
	var price float64
	if in.Price != nil && *in.Price > 0 {
		price = *in.Price
	}

	course := &entity.Course{
		ID:               uc.uuidGenerator.NewUUID(),
		Title:            in.Title,
		Description:      in.Description,
		Category:         entity.CourseCategory(in.Category),
		Level:            entity.CourseLevel(in.Level),
		GradeRange:       in.GradeRange,
		Price:            price,
		Duration:         in.Duration,
		ImageURL:         in.ImageURL,
		EducatorID:       requester.ID,
		Lessons:          []entity.Lesson{},
		EnrolledStudents: []entity.Enrollment{},
		IsActive:         true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uc.courseRepo.CreateCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to create course: %v", err)
		return nil, errors.New(errInternalServer)
	}

	uc.invalidateCatalog(ctx)
	return course, nil
}

// GetCourse returns a single course for the public detail view.
func (uc *CourseUsecase) GetCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, entity.ErrCourseNotFound) {
			return nil, entity.ErrCourseNotFound
		}
		uc.logger.Errorf("failed to retrieve course %s: %v", courseID, err)
		return nil, errors.New(errInternalServer)
	}
	return course, nil
}

// UpdateCourse merges the provided fields into an owned course.
func (uc *CourseUsecase) UpdateCourse(ctx context.Context, requester *entity.User, courseID string, in *usecasecontract.CourseInput) (*entity.Course, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, entity.ErrCourseNotFound
	}
	if !canManage(requester, course) {
		return nil, entity.ErrForbidden
	}

	if in.Title != "" {
		course.Title = in.Title
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.Category != "" {
		if !entity.ValidCategory(in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", entity.ErrValidation, in.Category)
		}
		course.Category = entity.CourseCategory(in.Category)
	}
	if in.Level != "" {
		if !entity.ValidLevel(in.Level) {
			return nil, fmt.Errorf("%w: unknown level %q", entity.ErrValidation, in.Level)
		}
		course.Level = entity.CourseLevel(in.Level)
	}
	if in.GradeRange != "" {
		course.GradeRange = in.GradeRange
	}
	if in.Price != nil {
		course.Price = *in.Price
		if course.Price < 0 {
			course.Price = 0
		}
	}
	if in.Duration != "" {
		course.Duration = in.Duration
	}
	if in.ImageURL != "" {
		course.ImageURL = in.ImageURL
	}
	course.UpdatedAt = time.Now()

	updated, err := uc.courseRepo.UpdateCourse(ctx, course)
	if err != nil {
		uc.logger.Errorf("failed to update course %s: %v", courseID, err)
		return nil, errors.New(errInternalServer)
	}

	uc.invalidateCatalog(ctx)
	return updated, nil
}

// DeleteCourse removes an owned course.
func (uc *CourseUsecase) DeleteCourse(ctx context.Context, requester *entity.User, courseID string) error {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return entity.ErrCourseNotFound
	}
	if !canManage(requester, course) {
		return entity.ErrForbidden
	}

	if err := uc.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		uc.logger.Errorf("failed to delete course %s: %v", courseID, err)
		return errors.New(errInternalServer)
	}

	uc.invalidateCatalog(ctx)
	return nil
}

// ListCatalog returns the public catalog, served from cache when wired.
func (uc *CourseUsecase) ListCatalog(ctx context.Context) ([]contract.CourseWithEducator, error) {
	if uc.cache != nil {
		if catalog, ok, err := uc.cache.GetCatalog(ctx); err == nil && ok {
			return catalog, nil
		}
	}

	catalog, err := uc.courseRepo.ListActiveCoursesWithEducator(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list course catalog: %v", err)
		return nil, errors.New(errInternalServer)
	}

	if uc.cache != nil {
		if err := uc.cache.SetCatalog(ctx, catalog); err != nil {
			uc.logger.Warnf("failed to cache course catalog: %v", err)
		}
	}
	return catalog, nil
}

// ListManagedCourses returns the management view of courses.
func (uc *CourseUsecase) ListManagedCourses(ctx context.Context, requester *entity.User) ([]entity.Course, error) {
	educatorID := requester.ID
	if requester.Role == entity.UserRoleAdmin {
		educatorID = ""
	}
	courses, err := uc.courseRepo.ListCourses(ctx, educatorID)
	if err != nil {
		uc.logger.Errorf("failed to list managed courses: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return courses, nil
}

// AddLesson appends a lesson to an owned course. Order defaults to the
// current lesson count plus one.
func (uc *CourseUsecase) AddLesson(ctx context.Context, requester *entity.User, courseID string, in *usecasecontract.LessonInput) (*entity.Lesson, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, entity.ErrCourseNotFound
	}
	if !canManage(requester, course) {
		return nil, entity.ErrForbidden
	}
	if in.Title == nil || *in.Title == "" {
		return nil, fmt.Errorf("%w: lesson title is required", entity.ErrValidation)
	}

	lesson := &entity.Lesson{
		ID:    uc.uuidGenerator.NewUUID(),
		Title: *in.Title,
		Order: len(course.Lessons) + 1,
	}
	if in.Content != nil {
		lesson.Content = *in.Content
	}
	if in.VideoURL != nil {
		lesson.VideoURL = *in.VideoURL
	}
	if in.VideoKey != nil {
		lesson.VideoKey = *in.VideoKey
	}
	if in.DocumentURL != nil {
		lesson.DocumentURL = *in.DocumentURL
	}
	if in.DocumentKey != nil {
		lesson.DocumentKey = *in.DocumentKey
	}
	if in.Duration != nil {
		lesson.Duration = *in.Duration
	}
	if in.Order != nil && *in.Order > 0 {
		lesson.Order = *in.Order
	}

	if err := uc.courseRepo.AddLesson(ctx, courseID, lesson); err != nil {
		uc.logger.Errorf("failed to add lesson to course %s: %v", courseID, err)
		return nil, errors.New(errInternalServer)
	}
	return lesson, nil
}

// UpdateLesson merges only the provided fields into an embedded lesson.
func (uc *CourseUsecase) UpdateLesson(ctx context.Context, requester *entity.User, courseID, lessonID string, in *usecasecontract.LessonInput) (*entity.Lesson, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, entity.ErrCourseNotFound
	}
	if !canManage(requester, course) {
		return nil, entity.ErrForbidden
	}

	lesson := course.LessonByID(lessonID)
	if lesson == nil {
		return nil, entity.ErrLessonNotFound
	}

	if in.Title != nil {
		lesson.Title = *in.Title
	}
	if in.Content != nil {
		lesson.Content = *in.Content
	}
	if in.VideoURL != nil {
		lesson.VideoURL = *in.VideoURL
	}
	if in.VideoKey != nil {
		lesson.VideoKey = *in.VideoKey
	}
	if in.DocumentURL != nil {
		lesson.DocumentURL = *in.DocumentURL
	}
	if in.DocumentKey != nil {
		lesson.DocumentKey = *in.DocumentKey
	}
	if in.Duration != nil {
		lesson.Duration = *in.Duration
	}
	if in.Order != nil && *in.Order > 0 {
		lesson.Order = *in.Order
	}

	if err := uc.courseRepo.UpdateLesson(ctx, courseID, lesson); err != nil {
		uc.logger.Errorf("failed to update lesson %s in course %s: %v", lessonID, courseID, err)
		return nil, errors.New(errInternalServer)
	}
	return lesson, nil
}

// ComputeDashboardStats aggregates the requester's management numbers.
// Enrollment counts include pending records; revenue sums only completed
// ones.
func (uc *CourseUsecase) ComputeDashboardStats(ctx context.Context, requester *entity.User) (*usecasecontract.DashboardStats, error) {
	if requester.Role != entity.UserRoleEducator && requester.Role != entity.UserRoleAdmin {
		return nil, entity.ErrForbidden
	}

	educatorID := requester.ID
	if requester.Role == entity.UserRoleAdmin {
		educatorID = ""
	}
	courses, err := uc.courseRepo.ListCourses(ctx, educatorID)
	if err != nil {
		uc.logger.Errorf("failed to list courses for dashboard: %v", err)
		return nil, errors.New(errInternalServer)
	}

	stats := &usecasecontract.DashboardStats{
		TotalCourses:   len(courses),
		TotalEducators: 1,
	}
	var recent []contract.RecentEnrollment
	for i := range courses {
		course := &courses[i]
		stats.TotalEnrollments += len(course.EnrolledStudents)
		for _, enr := range course.EnrolledStudents {
			if enr.Status == entity.PaymentCompleted {
				stats.TotalRevenue += course.Price
			}
			recent = append(recent, contract.RecentEnrollment{
				CourseID:    course.ID,
				CourseTitle: course.Title,
				Enrollment:  enr,
			})
		}
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Enrollment.EnrolledAt.After(recent[j].Enrollment.EnrolledAt)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentEnrollments = recent

	if requester.Role == entity.UserRoleAdmin {
		educators, err := uc.userRepo.CountByRole(ctx, entity.UserRoleEducator)
		if err != nil {
			uc.logger.Errorf("failed to count educators: %v", err)
			return nil, errors.New(errInternalServer)
		}
		stats.TotalEducators = educators
	}

	return stats, nil
}

func (uc *CourseUsecase) invalidateCatalog(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateCatalog(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate course catalog cache: %v", err)
	}
}
