package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository is the MongoDB implementation of the ICourseRepository
// interface. Lessons and enrollments live embedded in the course document,
// so every mutation is a single-document operation.
type CourseRepository struct {
	collection      *mongo.Collection
	usersCollection *mongo.Collection
}

// NewCourseRepository creates and returns a new CourseRepository instance.
func NewCourseRepository(db *mongo.Database, users *mongo.Collection) *CourseRepository {
	return &CourseRepository{
		collection:      db.Collection("courses"),
		usersCollection: users,
	}
}

var _ contract.ICourseRepository = (*CourseRepository)(nil)

// CreateCourse inserts a new course record into the database.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	if course.Lessons == nil {
		course.Lessons = []entity.Lesson{}
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []entity.Enrollment{}
	}
	_, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a single course by its unique id.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}
	return &course, nil
}

// ListCourses returns all courses, or only an educator's courses when
// educatorID is non-empty, newest first.
func (r *CourseRepository) ListCourses(ctx context.Context, educatorID string) ([]entity.Course, error) {
	filter := bson.M{}
	if educatorID != "" {
		filter["educator_id"] = educatorID
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// ListActiveCoursesWithEducator returns the public catalog with educator
// names resolved via a lookup on the users collection.
func (r *CourseRepository) ListActiveCoursesWithEducator(ctx context.Context) ([]contract.CourseWithEducator, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.usersCollection.Name(),
			"localField":   "educator_id",
			"foreignField": "_id",
			"as":           "educator",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"educator_name": bson.M{"$arrayElemAt": bson.A{"$educator.name", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"educator": 0}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate course catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var catalog []contract.CourseWithEducator
	if err := cursor.All(ctx, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode course catalog: %w", err)
	}
	return catalog, nil
}

// UpdateCourse replaces the mutable course fields and returns the updated
// document.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	course.UpdatedAt = time.Now()
	filter := bson.M{"_id": course.ID}
	update := bson.M{"$set": bson.M{
		"title":       course.Title,
		"description": course.Description,
		"category":    course.Category,
		"level":       course.Level,
		"grade_range": course.GradeRange,
		"price":       course.Price,
		"duration":    course.Duration,
		"image_url":   course.ImageURL,
		"rating":      course.Rating,
		"is_active":   course.IsActive,
		"updated_at":  course.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrCourseNotFound
	}

	var updated entity.Course
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse removes a course and its embedded children.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrCourseNotFound
	}
	return nil
}

// AddLesson appends a lesson to the embedded lesson list.
func (r *CourseRepository) AddLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error {
	update := bson.M{
		"$push": bson.M{"lessons": lesson},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return fmt.Errorf("failed to add lesson: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrCourseNotFound
	}
	return nil
}

// UpdateLesson replaces the embedded lesson matching lesson.ID using the
// positional operator.
func (r *CourseRepository) UpdateLesson(ctx context.Context, courseID string, lesson *entity.Lesson) error {
	filter := bson.M{"_id": courseID, "lessons._id": lesson.ID}
	update := bson.M{
		"$set": bson.M{
			"lessons.$":  lesson,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrLessonNotFound
	}
	return nil
}

// AppendEnrollment appends an enrollment record with a guarded update: the
// filter matches the course only while the student is absent from the
// embedded list, so the duplicate check and the write are one atomic
// operation. Concurrent verifiers race on the document update and exactly
// one wins. The total_students counter moves in the same update and so
// always equals the list length.
func (r *CourseRepository) AppendEnrollment(ctx context.Context, courseID string, enrollment *entity.Enrollment) error {
	filter := bson.M{
		"_id":                          courseID,
		"enrolled_students.student_id": bson.M{"$ne": enrollment.StudentID},
	}
	update := bson.M{
		"$push": bson.M{"enrolled_students": enrollment},
		"$inc":  bson.M{"total_students": 1},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append enrollment: %w", err)
	}
	if result.MatchedCount == 0 {
		// Either the course is gone or the guard rejected a duplicate.
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": courseID})
		if err != nil {
			return fmt.Errorf("failed to resolve enrollment conflict: %w", err)
		}
		if count == 0 {
			return entity.ErrCourseNotFound
		}
		return entity.ErrAlreadyEnrolled
	}
	return nil
}

// UpdateEnrollmentProgress writes the student's progress in place. Only a
// completed enrollment matches.
func (r *CourseRepository) UpdateEnrollmentProgress(ctx context.Context, courseID, studentID string, progress int) error {
	filter := bson.M{
		"_id": courseID,
		"enrolled_students": bson.M{"$elemMatch": bson.M{
			"student_id": studentID,
			"status":     entity.PaymentCompleted,
		}},
	}
	update := bson.M{"$set": bson.M{"enrolled_students.$.progress": progress}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}
	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": courseID})
		if err != nil {
			return fmt.Errorf("failed to resolve progress update: %w", err)
		}
		if count == 0 {
			return entity.ErrCourseNotFound
		}
		return entity.ErrNotEnrolled
	}
	return nil
}

// ListCoursesEnrolledBy returns courses where the student holds a completed
// enrollment.
func (r *CourseRepository) ListCoursesEnrolledBy(ctx context.Context, studentID string) ([]entity.Course, error) {
	filter := bson.M{
		"enrolled_students": bson.M{"$elemMatch": bson.M{
			"student_id": studentID,
			"status":     entity.PaymentCompleted,
		}},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode enrolled courses: %w", err)
	}
	return courses, nil
}
