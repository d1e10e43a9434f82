package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulaplus/adminpanel/internal/models"
)

type CourseService struct {
	courses *mongo.Collection
}

func NewCourseService(db *mongo.Database) *CourseService {
	return &CourseService{courses: db.Collection("courses")}
}

// List returns all courses with each video list sorted by its order field.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	cursor, err := s.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	for i := range courses {
		SortVideos(courses[i].Videos)
	}
	return courses, nil
}

// SortVideos orders a course's videos for display.
func SortVideos(videos []models.CourseVideo) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Order < videos[j].Order
	})
}

func (s *CourseService) Create(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = primitive.NewObjectID()
	if course.Videos == nil {
		course.Videos = []models.CourseVideo{}
	}
	if _, err := s.courses.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, course models.Course) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCourseNotFound
	}
	res, err := s.courses.UpdateByID(ctx, objID, bson.M{"$set": bson.M{
		"name":        course.Name,
		"description": course.Description,
		"price":       course.Price,
		"videos":      course.Videos,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCourseNotFound
	}
	res, err := s.courses.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCourseNotFound
	}
	return nil
}
