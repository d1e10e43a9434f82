package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulaplus/adminpanel/internal/models"
)

// ClassService manages live classes. Listings are grouped into past, today
// and upcoming buckets; "today" is evaluated in the platform's configured
// location, since fecha is a date-only field with no timezone of its own.
type ClassService struct {
	classes *mongo.Collection
	loc     *time.Location
}

func NewClassService(db *mongo.Database, loc *time.Location) *ClassService {
	return &ClassService{classes: db.Collection("liveclasses"), loc: loc}
}

// ListGrouped returns every class bucketed relative to today.
func (s *ClassService) ListGrouped(ctx context.Context) (models.GroupedClasses, error) {
	cursor, err := s.classes.Find(ctx, bson.M{})
	if err != nil {
		return models.GroupedClasses{}, err
	}
	defer cursor.Close(ctx)

	var classes []models.LiveClass
	if err := cursor.All(ctx, &classes); err != nil {
		return models.GroupedClasses{}, err
	}

	today := time.Now().In(s.loc).Format("2006-01-02")
	return BucketClasses(classes, today), nil
}

// BucketClasses splits classes into past/today/upcoming by comparing each
// fecha string against today (both YYYY-MM-DD, so lexicographic order is
// date order). A class without a fecha lands in no bucket.
func BucketClasses(classes []models.LiveClass, today string) models.GroupedClasses {
	grouped := models.GroupedClasses{
		Pasadas:  []models.LiveClass{},
		Hoy:      []models.LiveClass{},
		Proximas: []models.LiveClass{},
	}
	for _, class := range classes {
		switch {
		case class.Fecha == "":
			// unscheduled, skip
		case class.Fecha < today:
			grouped.Pasadas = append(grouped.Pasadas, class)
		case class.Fecha == today:
			grouped.Hoy = append(grouped.Hoy, class)
		default:
			grouped.Proximas = append(grouped.Proximas, class)
		}
	}
	return grouped
}

// Create inserts a class, generating a meeting id when none is provided.
func (s *ClassService) Create(ctx context.Context, class models.LiveClass) (models.LiveClass, error) {
	class.ID = primitive.NewObjectID()
	if class.IDReunion == "" {
		class.IDReunion = uuid.NewString()
	}
	if _, err := s.classes.InsertOne(ctx, class); err != nil {
		return models.LiveClass{}, err
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, id string, class models.LiveClass) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrClassNotFound
	}
	res, err := s.classes.UpdateByID(ctx, objID, bson.M{"$set": bson.M{
		"titulo":      class.Titulo,
		"fecha":       class.Fecha,
		"hora":        class.Hora,
		"duracion":    class.Duracion,
		"expositor":   class.Expositor,
		"descripcion": class.Descripcion,
		"enlace":      class.Enlace,
		"idReunion":   class.IDReunion,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (s *ClassService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrClassNotFound
	}
	res, err := s.classes.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrClassNotFound
	}
	return nil
}
