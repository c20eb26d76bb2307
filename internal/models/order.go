package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of an order, stored as submitted by the client.
type OrderItem struct {
	ID   string `bson:"id" json:"id"`
	Qty  int    `bson:"qty" json:"qty"`
	Name string `bson:"name" json:"name"`
}

// Order is the persisted order document. Totals, discount and coupon are the
// client-declared values; they are not re-derived server-side.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID     string             `bson:"orderId" json:"orderId"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Total       float64            `bson:"total" json:"total"`
	FinalTotal  float64            `bson:"finalTotal" json:"finalTotal"`
	PickupTime  string             `bson:"pickupTime" json:"pickupTime"`
	PaymentMode string             `bson:"paymentMode" json:"paymentMode"`
	Coupon      string             `bson:"coupon,omitempty" json:"coupon,omitempty"`
	Discount    float64            `bson:"discount" json:"discount"`
	Location    string             `bson:"location" json:"location"`
	Status      string             `bson:"status" json:"status"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
