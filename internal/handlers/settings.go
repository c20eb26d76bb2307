package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"canteen-backend/internal/models"
)

const shopStatusID = "shop_status"

// defaultShopSetting is the singleton created on first read: shop open, no
// announcement.
func defaultShopSetting() models.Setting {
	return models.Setting{ID: shopStatusID, IsOpen: true, Announcement: ""}
}

// GetShopStatus reads the shop-status singleton, creating it with defaults
// on first access. The single FindOneAndUpdate upsert keeps concurrent first
// reads from inserting duplicates.
func GetShopStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/status"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		defaults := defaultShopSetting()
		var setting models.Setting
		err := db.Collection("settings").FindOneAndUpdate(ctx,
			bson.M{"id": shopStatusID},
			bson.M{"$setOnInsert": bson.M{
				"id":           defaults.ID,
				"isOpen":       defaults.IsOpen,
				"announcement": defaults.Announcement,
			}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&setting)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"isOpen":       setting.IsOpen,
			"announcement": setting.Announcement,
		})
	}
}

type toggleShopRequest struct {
	IsOpen bool `json:"isOpen"`
}

func ToggleShop(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/toggle-shop"
		defer handlePanic(c, route)

		var req toggleShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("settings").UpdateOne(ctx,
			bson.M{"id": shopStatusID},
			bson.M{"$set": bson.M{"isOpen": req.IsOpen}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}

type announceRequest struct {
	Text string `json:"text"`
}

func Announce(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/announce"
		defer handlePanic(c, route)

		var req announceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("settings").UpdateOne(ctx,
			bson.M{"id": shopStatusID},
			bson.M{"$set": bson.M{"announcement": req.Text}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}
