package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Videos      []CourseVideo      `bson:"videos" json:"videos"`
}

// CourseVideo entries are kept unsorted in the document and ordered by Order
// when listed.
type CourseVideo struct {
	URL         string `bson:"url" json:"url"`
	Order       int    `bson:"order" json:"order"`
	Description string `bson:"description" json:"description"`
}
