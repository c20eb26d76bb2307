package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"canteen-backend/internal/models"
)

// revenueDateKey is the per-day ledger key in local time.
func revenueDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// postDailyRevenue upsert-increments today's ledger record. It runs detached
// from the order response path, so failures are only logged.
func postDailyRevenue(db *mongo.Database, amount float64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Collection("revenues").UpdateOne(ctx,
		bson.M{"date": revenueDateKey(time.Now())},
		bson.M{"$inc": bson.M{"amount": amount}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("[revenue] daily update failed: %v", err)
	}
}

// GetRevenue returns all ledger records, newest date first.
func GetRevenue(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/revenue"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("revenues").Find(ctx, bson.M{}, newestFirst("date"))
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		defer cursor.Close(ctx)

		records := []models.RevenueRecord{}
		if err := cursor.All(ctx, &records); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		c.JSON(http.StatusOK, records)
	}
}
