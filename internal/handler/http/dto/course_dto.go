package dto

// CreateCourseRequest creates or updates a course. On updates, zero-valued
// fields are left unchanged (price excepted, which uses a pointer).
type CourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	GradeRange  string   `json:"grade_range"`
	Price       *float64 `json:"price"`
	Duration    string   `json:"duration"`
	ImageURL    string   `json:"image_url"`
}

// LessonRequest creates or partially updates a lesson. Nil means "leave
// unchanged" on updates.
type LessonRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	VideoURL    *string `json:"video_url"`
	VideoKey    *string `json:"video_key"`
	DocumentURL *string `json:"document_url"`
	DocumentKey *string `json:"document_key"`
	Duration    *int    `json:"duration"`
	Order       *int    `json:"order"`
}

// CreateOrderRequest starts the payment workflow for one course.
type CreateOrderRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// VerifyPaymentRequest carries the gateway's client-side completion payload.
type VerifyPaymentRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// UpdateProgressRequest writes the student's course progress.
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
