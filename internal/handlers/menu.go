package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"canteen-backend/internal/models"
)

/* =========================
   PUBLIC MENU
========================= */

// GetMenu returns every catalog item; clients filter by availability and
// category themselves.
func GetMenu(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/menu"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("items").Find(ctx, bson.M{})
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		defer cursor.Close(ctx)

		items := []models.Item{}
		if err := cursor.All(ctx, &items); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

/* =========================
   ADMIN ITEM CRUD
========================= */

type addItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	IsAvailable *bool    `json:"isAvailable"`
	Stock       *int     `json:"stock"`
}

// normalizeNewItem validates the required fields and fills the catalog
// defaults (placeholder image, available, stock 50).
func normalizeNewItem(req addItemRequest) (models.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Item{}, errors.New("name is required")
	}
	if req.Price == nil {
		return models.Item{}, errors.New("price is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return models.Item{}, errors.New("category is required")
	}

	item := models.Item{
		Name:        name,
		Price:       *req.Price,
		Category:    strings.TrimSpace(req.Category),
		Image:       models.DefaultItemImage,
		IsAvailable: true,
		Stock:       models.DefaultItemStock,
	}
	if image := strings.TrimSpace(req.Image); image != "" {
		item.Image = image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	return item, nil
}

func AddItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/add-item"
		defer handlePanic(c, route)

		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		item, err := normalizeNewItem(req)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("items").InsertOne(ctx, item); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		respondSuccess(c)
	}
}

type deleteItemRequest struct {
	ID string `json:"id" binding:"required"`
}

func DeleteItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/delete-item"
		defer handlePanic(c, route)

		var req deleteItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		itemID, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("items").DeleteOne(ctx, bson.M{"_id": itemID}); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}

type updateAvailabilityRequest struct {
	ID          string `json:"id" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateItemAvailability toggles the availability flag only; the API surface
// never edits stock directly.
func UpdateItemAvailability(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/update-stock"
		defer handlePanic(c, route)

		var req updateAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		itemID, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("items").UpdateOne(ctx,
			bson.M{"_id": itemID},
			bson.M{"$set": bson.M{"isAvailable": req.IsAvailable}},
		)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}
