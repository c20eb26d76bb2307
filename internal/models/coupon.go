package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coupon is a discount code. Type is either "flat" (discount = Value) or
// "percent" (discount = floor(total * Value / 100)). Codes are stored
// upper-case and looked up case-insensitively.
type Coupon struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code     string             `bson:"code" json:"code"`
	Type     string             `bson:"type" json:"type"`
	Value    float64            `bson:"value" json:"value"`
	MinOrder float64            `bson:"minOrder" json:"minOrder"`
}
