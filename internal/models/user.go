package models

import "time"

// User is the platform account document. The ID is the uid assigned by the
// identity provider, so it is stored as a plain string rather than an ObjectID.
type User struct {
	ID               string       `bson:"_id" json:"id"`
	Email            string       `bson:"email" json:"email" validate:"required,email"`
	Role             string       `bson:"role" json:"role"`
	Active           bool         `bson:"active" json:"active"`
	IsPremium        bool         `bson:"isPremium" json:"isPremium"`
	FechaSuscripcion time.Time    `bson:"fechaSuscripcion,omitempty" json:"fechaSuscripcion,omitempty"`
	FechaVencimiento time.Time    `bson:"fechaVencimiento,omitempty" json:"fechaVencimiento,omitempty"`
	CursosPagados    []PaidCourse `bson:"cursosPagados" json:"cursosPagados"`
	CreatedAt        time.Time    `bson:"created_at" json:"created_at"`
}

// PaidCourse is one entry of a user's paid-courses list, appended when a
// payment request is approved. CourseID keys idempotency: a user never holds
// two entries for the same course.
type PaidCourse struct {
	CourseID   string    `bson:"courseId" json:"courseId"`
	CourseName string    `bson:"courseName" json:"courseName"`
	ExamDate   string    `bson:"examDate,omitempty" json:"examDate,omitempty"`
	GrantedAt  time.Time `bson:"grantedAt" json:"grantedAt"`
}

// UserSummary is the wire shape returned by the admin user listing. Date
// fields are normalized to ISO YYYY-MM-DD, or "" when unset.
type UserSummary struct {
	ID               string       `json:"id"`
	Email            string       `json:"email"`
	Role             string       `json:"role"`
	Active           bool         `json:"active"`
	IsPremium        bool         `json:"isPremium"`
	FechaSuscripcion string       `json:"fechaSuscripcion"`
	FechaVencimiento string       `json:"fechaVencimiento"`
	CursosPagados    []PaidCourse `json:"cursosPagados"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
