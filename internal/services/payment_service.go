package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulaplus/adminpanel/internal/models"
)

// PaymentService handles pending payment requests (solicitudes). Approval
// grants the course and deletes the request inside one transaction, so a
// crash can no longer leave a granted course with a still-pending request or
// the other way around.
type PaymentService struct {
	client   *mongo.Client
	requests *mongo.Collection
	users    *mongo.Collection
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{
		client:   db.Client(),
		requests: db.Collection("solicitudes"),
		users:    db.Collection("users"),
	}
}

// List returns all pending payment requests.
func (s *PaymentService) List(ctx context.Context) ([]models.PaymentRequest, error) {
	cursor, err := s.requests.Find(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.PaymentRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve grants the requested course to the user and deletes the request.
// The paid-course append is keyed by courseId, so approving twice (or a
// request duplicating an already-granted course) still leaves exactly one
// entry on the user.
func (s *PaymentService) Approve(ctx context.Context, requestID string) error {
	objID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return ErrRequestNotFound
	}

	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var req models.PaymentRequest
		err := s.requests.FindOne(sc, bson.M{"_id": objID}).Decode(&req)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRequestNotFound
		}
		if err != nil {
			return nil, err
		}

		res, err := s.users.UpdateOne(sc,
			bson.M{"_id": req.UserID, "cursosPagados.courseId": bson.M{"$ne": req.CourseID}},
			bson.M{"$push": bson.M{"cursosPagados": models.PaidCourse{
				CourseID:   req.CourseID,
				CourseName: req.CourseName,
				ExamDate:   req.ExamDate,
				GrantedAt:  time.Now(),
			}}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			// Either the user is gone or the course is already granted.
			count, err := s.users.CountDocuments(sc, bson.M{"_id": req.UserID})
			if err != nil {
				return nil, err
			}
			if count == 0 {
				return nil, ErrUserNotFound
			}
		}

		if _, err := s.requests.DeleteOne(sc, bson.M{"_id": objID}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// Reject deletes the request without touching the user.
func (s *PaymentService) Reject(ctx context.Context, requestID string) error {
	objID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return ErrRequestNotFound
	}
	res, err := s.requests.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}
