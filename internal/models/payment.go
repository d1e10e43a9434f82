package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRequest (solicitud) is a pending record awaiting manual confirmation
// of an offline payment. Approval grants the course to the user and removes
// the request; rejection just removes it. Both outcomes are terminal.
type PaymentRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	UserName   string             `bson:"userName" json:"userName"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	UserPhone  string             `bson:"userPhone" json:"userPhone"`
	CourseID   string             `bson:"courseId" json:"courseId"`
	CourseName string             `bson:"courseName" json:"courseName"`
	ExamDate   string             `bson:"examDate" json:"examDate"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

const StatusPending = "pending"
