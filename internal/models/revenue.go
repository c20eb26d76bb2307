package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RevenueRecord accumulates the final totals of all orders placed on one
// local calendar day (Date is formatted YYYY-MM-DD).
type RevenueRecord struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date   string             `bson:"date" json:"date"`
	Amount float64            `bson:"amount" json:"amount"`
}
