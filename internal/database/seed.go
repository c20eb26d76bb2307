package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"canteen-backend/internal/models"
)

// SeedAdmin creates the single admin principal on first boot. The password
// is stored as a bcrypt hash of the configured fallback.
func SeedAdmin(db *mongo.Database, fallbackPass string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := db.Collection("admins").FindOne(ctx, bson.M{}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fallbackPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Collection("admins").InsertOne(ctx, models.Admin{
		Username: "admin",
		Pass:     string(hash),
	})
	if err != nil {
		return err
	}
	log.Println("SeedAdmin: default admin created")
	return nil
}

// SeedCoupons installs the default coupon set when the collection is empty.
func SeedCoupons(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.Collection("coupons").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []interface{}{
		models.Coupon{Code: "WELCOME50", Type: "flat", Value: 50, MinOrder: 150},
		models.Coupon{Code: "FOODIE10", Type: "percent", Value: 10, MinOrder: 100},
	}
	_, err = db.Collection("coupons").InsertMany(ctx, defaults)
	if err != nil {
		return err
	}
	log.Println("SeedCoupons: default coupons created: WELCOME50 & FOODIE10")
	return nil
}

// CleanUpItems removes catalog entries that were saved without a usable name.
func CleanUpItems(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Collection("items").DeleteMany(ctx, bson.M{
		"$or": bson.A{
			bson.M{"name": bson.M{"$exists": false}},
			bson.M{"name": "undefined"},
		},
	})
	return err
}
