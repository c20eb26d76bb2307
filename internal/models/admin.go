package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin is the single seeded admin principal. Pass holds a bcrypt hash.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Pass     string             `bson:"pass"`
}
