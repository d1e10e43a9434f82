package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LiveClass is a scheduled live session. Fecha is a date-only string
// (YYYY-MM-DD) so listings can bucket classes by plain string comparison
// against today's date.
type LiveClass struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Titulo      string             `bson:"titulo" json:"titulo" validate:"required"`
	Fecha       string             `bson:"fecha" json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Hora        string             `bson:"hora" json:"hora"`
	Duracion    string             `bson:"duracion" json:"duracion"`
	Expositor   string             `bson:"expositor" json:"expositor"`
	Descripcion string             `bson:"descripcion" json:"descripcion"`
	Enlace      string             `bson:"enlace" json:"enlace"`
	IDReunion   string             `bson:"idReunion" json:"idReunion"`
}

// GroupedClasses buckets live classes relative to today's date. A class with
// no fecha is listed in none of the buckets.
type GroupedClasses struct {
	Pasadas  []LiveClass `json:"pasadas"`
	Hoy      []LiveClass `json:"hoy"`
	Proximas []LiveClass `json:"proximas"`
}
