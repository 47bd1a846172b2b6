package entity

import (
	"time"
)

// CourseCategory is the closed set of catalog categories.
type CourseCategory string

const (
	CategoryMathematics CourseCategory = "mathematics"
	CategoryScience     CourseCategory = "science"
	CategoryLanguage    CourseCategory = "language"
	CategoryTechnology  CourseCategory = "technology"
	CategoryArts        CourseCategory = "arts"
	CategoryCommerce    CourseCategory = "commerce"
)

// CourseLevel is the closed set of difficulty levels.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// PaymentStatus tracks the state of an enrollment's payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Lesson is an embedded child of Course. It has no existence of its own and
// is addressed by its ID within the parent document.
type Lesson struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Content     string `bson:"content" json:"content"`
	VideoURL    string `bson:"video_url,omitempty" json:"video_url,omitempty"`
	VideoKey    string `bson:"video_key,omitempty" json:"-"`
	DocumentURL string `bson:"document_url,omitempty" json:"document_url,omitempty"`
	DocumentKey string `bson:"document_key,omitempty" json:"-"`
	Duration    int    `bson:"duration" json:"duration"` // minutes
	Order       int    `bson:"order" json:"order"`
}

// Enrollment links one student to one course with payment and progress state.
// Records are appended by the payment workflow and mutated only through
// progress updates.
type Enrollment struct {
	StudentID  string        `bson:"student_id" json:"student_id"`
	EnrolledAt time.Time     `bson:"enrolled_at" json:"enrolled_at"`
	PaymentID  string        `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Status     PaymentStatus `bson:"status" json:"status"`
	Progress   int           `bson:"progress" json:"progress"` // 0-100
}

// Course is the aggregate root. Lessons and enrollments are embedded and
// share its lifecycle.
type Course struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Category    CourseCategory `bson:"category" json:"category"`
	Level       CourseLevel    `bson:"level" json:"level"`
	GradeRange  string         `bson:"grade_range,omitempty" json:"grade_range,omitempty"`
	Price       float64        `bson:"price" json:"price"` // 0 means free
	Duration    string         `bson:"duration,omitempty" json:"duration,omitempty"`
	ImageURL    string         `bson:"image_url,omitempty" json:"image_url,omitempty"`
	EducatorID  string         `bson:"educator_id" json:"educator_id"`

	Lessons          []Lesson     `bson:"lessons" json:"lessons"`
	EnrolledStudents []Enrollment `bson:"enrolled_students" json:"enrolled_students"`

	// Display aggregates. TotalStudents moves in the same atomic update as
	// the enrollment push, never in a separate write.
	Rating        float64 `bson:"rating" json:"rating"`
	TotalStudents int     `bson:"total_students" json:"total_students"`

	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EnrollmentOf returns this student's enrollment record, if any.
func (c *Course) EnrollmentOf(studentID string) *Enrollment {
	for i := range c.EnrolledStudents {
		if c.EnrolledStudents[i].StudentID == studentID {
			return &c.EnrolledStudents[i]
		}
	}
	return nil
}

// LessonByID returns the embedded lesson with the given id, if any.
func (c *Course) LessonByID(lessonID string) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == lessonID {
			return &c.Lessons[i]
		}
	}
	return nil
}

// ValidCategory reports whether s is a member of the category enum.
func ValidCategory(s string) bool {
	switch CourseCategory(s) {
	case CategoryMathematics, CategoryScience, CategoryLanguage,
		CategoryTechnology, CategoryArts, CategoryCommerce:
		return true
	}
	return false
}

// ValidLevel reports whether s is a member of the level enum.
func ValidLevel(s string) bool {
	switch CourseLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
