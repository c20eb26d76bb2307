package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultItemImage is used when an item is added without an image URL.
const DefaultItemImage = "https://cdn-icons-png.flaticon.com/512/754/754857.png"

// DefaultItemStock is the stock count assigned to newly added items.
const DefaultItemStock = 50

// Item is a sellable menu entry. Stock is decremented by the order workflow;
// admins only toggle availability through the API.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	Stock       int                `bson:"stock" json:"stock"`
}
