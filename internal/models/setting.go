package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Setting is the singleton shop-status document, keyed by a fixed id.
type Setting struct {
	MongoID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"id" json:"id"`
	IsOpen       bool               `bson:"isOpen" json:"isOpen"`
	Announcement string             `bson:"announcement" json:"announcement"`
}
