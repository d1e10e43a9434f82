package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/utils"
)

const bulkDeleteWorkers = 8

// BulkResult reports a bulk operation per id. Success and Failed together
// cover every input id exactly once; a partial failure never aborts the rest
// of the batch.
type BulkResult struct {
	Success []string      `json:"success"`
	Failed  []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// List returns all users with subscription dates normalized to YYYY-MM-DD
// strings, empty when unset.
func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.UserSummary{
			ID:               u.ID,
			Email:            u.Email,
			Role:             u.Role,
			Active:           u.Active,
			IsPremium:        u.IsPremium,
			FechaSuscripcion: normalizeDate(u.FechaSuscripcion),
			FechaVencimiento: normalizeDate(u.FechaVencimiento),
			CursosPagados:    u.CursosPagados,
		})
	}
	return summaries, nil
}

// Delete removes a single user document.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// BulkDelete removes many users, fanning out over a bounded worker pool.
// Each id succeeds or fails on its own; the batch always completes.
func (s *UserService) BulkDelete(ctx context.Context, userIDs []string) BulkResult {
	return runBulk(userIDs, bulkDeleteWorkers, func(id string) error {
		return s.Delete(ctx, id)
	})
}

// runBulk applies op to every id with bounded concurrency and partitions the
// ids into successes and failures.
func runBulk(ids []string, workers int, op func(id string) error) BulkResult {
	errs := make([]error, len(ids))

	pool := utils.NewWorkerPool(workers)
	defer pool.Close()

	var mu sync.Mutex
	for i, id := range ids {
		i, id := i, id
		pool.AddTask(func() {
			err := op(id)
			mu.Lock()
			errs[i] = err
			mu.Unlock()
		})
	}
	pool.Wait()

	result := BulkResult{Success: []string{}, Failed: []BulkFailure{}}
	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: id, Error: errs[i].Error()})
		} else {
			result.Success = append(result.Success, id)
		}
	}
	return result
}

// ToggleActive flips the active flag in a single pipeline update, so two
// concurrent toggles can never both read the same prior value.
func (s *UserService) ToggleActive(ctx context.Context, userID string) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "active", Value: bson.D{{Key: "$not", Value: "$active"}}},
		}}},
	}
	res, err := s.users.UpdateByID(ctx, userID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateSubscription sets the subscription window from a start date and a
// month count (30 days per month), deriving isPremium from whether now falls
// inside it.
func (s *UserService) UpdateSubscription(ctx context.Context, userID, fechaSuscripcion string, months int) error {
	start, err := time.Parse("2006-01-02", fechaSuscripcion)
	if err != nil {
		return err
	}
	expiry, premium := SubscriptionWindow(start, months, time.Now())

	res, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{
		"fechaSuscripcion": start,
		"fechaVencimiento": expiry,
		"isPremium":        premium,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ClearSubscription resets the subscription fields to their sentinel values.
func (s *UserService) ClearSubscription(ctx context.Context, userID string) error {
	res, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{
		"fechaSuscripcion": time.Time{},
		"fechaVencimiento": time.Time{},
		"isPremium":        false,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SubscriptionWindow computes the expiration date as start plus 30 days per
// purchased month, and whether now falls inside [start, expiry] inclusive.
func SubscriptionWindow(start time.Time, months int, now time.Time) (time.Time, bool) {
	expiry := start.AddDate(0, 0, 30*months)
	premium := !now.Before(start) && !now.After(expiry)
	return expiry, premium
}

func normalizeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
