package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Meeting is a scheduled meeting. The backend only reads meetings.
type Meeting struct {
	ID            bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	StartDatetime time.Time     `json:"start_datetime" bson:"start_datetime"`
	EndDatetime   time.Time     `json:"end_datetime" bson:"end_datetime"`
	PlaceID       bson.ObjectID `json:"place_id" bson:"place_id"`
	UserCreate    string        `json:"user_create" bson:"user_create"`
}

// Place is a meeting venue.
type Place struct {
	ID   bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name"`
}
