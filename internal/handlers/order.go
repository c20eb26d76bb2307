package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"canteen-backend/internal/models"
	"canteen-backend/internal/notify"
)

/* =========================
   REQUEST DTOs
========================= */

type orderItemRequest struct {
	ID   string `json:"id"`
	Qty  int    `json:"qty"`
	Name string `json:"name"`
}

type createOrderRequest struct {
	Items       []orderItemRequest `json:"items" binding:"required"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Total       float64            `json:"total"`
	FinalTotal  float64            `json:"finalTotal"`
	PickupTime  string             `json:"pickupTime"`
	PaymentMode string             `json:"paymentMode"`
	Coupon      string             `json:"coupon"`
	Discount    float64            `json:"discount"`
	Location    string             `json:"location"`
}

// stockReservation is one validated line of the order, ready to decrement.
type stockReservation struct {
	itemID primitive.ObjectID
	qty    int
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder runs the order workflow: per-line stock validation, conditional
// stock decrement with compensation on failure, order persistence, then
// detached notification and revenue side effects. The totals and discount in
// the request are stored as declared by the client.
func CreateOrder(db *mongo.Database, notifier *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/order"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		plan, err := buildStockPlan(req.Items, func(id primitive.ObjectID) (models.Item, bool, error) {
			var item models.Item
			err := db.Collection("items").FindOne(ctx, bson.M{"_id": id}).Decode(&item)
			if err == mongo.ErrNoDocuments {
				return models.Item{}, false, nil
			}
			if err != nil {
				return models.Item{}, false, err
			}
			return item, true, nil
		})
		if err != nil {
			var stockErr insufficientStockError
			if errors.As(err, &stockErr) {
				respondFailure(c, route, stockErr.Error())
				return
			}
			respondFailure(c, route, serverErrorMessage)
			return
		}

		// Each decrement only applies while stock covers the quantity, so a
		// concurrent order cannot push stock negative. If any line loses
		// that race, every applied decrement is released.
		applied, failedLine, err := reserveStock(plan, func(r stockReservation) (bool, error) {
			res, err := db.Collection("items").UpdateOne(ctx,
				bson.M{"_id": r.itemID, "stock": bson.M{"$gte": r.qty}},
				bson.M{"$inc": bson.M{"stock": -r.qty}},
			)
			if err != nil {
				return false, err
			}
			return res.MatchedCount > 0, nil
		})
		if err != nil {
			releaseReservations(db, applied, route)
			respondFailure(c, route, serverErrorMessage)
			return
		}
		if failedLine != nil {
			releaseReservations(db, applied, route)
			name, stock := currentItemStock(ctx, db, failedLine.itemID)
			respondFailure(c, route, insufficientStockError{Name: name, Stock: stock}.Error())
			return
		}

		order := models.Order{
			OrderID:     newOrderID(),
			Name:        req.Name,
			Phone:       req.Phone,
			Items:       orderItemsFromRequest(req.Items),
			Total:       req.Total,
			FinalTotal:  req.FinalTotal,
			PickupTime:  req.PickupTime,
			PaymentMode: req.PaymentMode,
			Coupon:      req.Coupon,
			Discount:    req.Discount,
			Location:    req.Location,
			Status:      "Pending",
			Timestamp:   time.Now(),
		}

		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		// Side effects run detached with their own contexts; the response
		// never waits on them and their failures are only logged.
		go notifier.OrderPlaced(order)
		go postDailyRevenue(db, order.FinalTotal)

		log.Printf("[%s] order %s created for %s", route, order.OrderID, order.Name)
		c.JSON(http.StatusOK, gin.H{"success": true, "orderId": order.OrderID})
	}
}

/* =========================
   LIST / MUTATE ORDERS
========================= */

// GetOrders returns orders placed in the last 24 hours, newest first.
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		yesterday := time.Now().Add(-24 * time.Hour)
		cursor, err := db.Collection("orders").Find(ctx,
			bson.M{"timestamp": bson.M{"$gte": yesterday}},
			newestFirst("timestamp"),
		)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		defer cursor.Close(ctx)

		orders := []models.Order{}
		if err := cursor.All(ctx, &orders); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

type updateStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status"`
}

func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/update-status"
		defer handlePanic(c, route)

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("orders").UpdateOne(ctx,
			bson.M{"orderId": req.OrderID},
			bson.M{"$set": bson.M{"status": req.Status}},
		)
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}

type deleteOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/delete-order"
		defer handlePanic(c, route)

		var req deleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("orders").DeleteOne(ctx, bson.M{"orderId": req.OrderID}); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}

func ClearOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/clear-all"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("orders").DeleteMany(ctx, bson.M{}); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}
		respondSuccess(c)
	}
}

/* =========================
   WORKFLOW HELPERS
========================= */

type insufficientStockError struct {
	Name  string
	Stock int
}

func (e insufficientStockError) Error() string {
	return fmt.Sprintf("Oops! %s bas %d bache hain.", e.Name, e.Stock)
}

// buildStockPlan validates every order line against the catalog via lookup.
// Lines with an unknown item or a non-positive quantity are skipped; a known
// item with too little stock fails the whole order, so no decrement happens
// for any line of a rejected request.
func buildStockPlan(lines []orderItemRequest, lookup func(primitive.ObjectID) (models.Item, bool, error)) ([]stockReservation, error) {
	plan := make([]stockReservation, 0, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		itemID, err := primitive.ObjectIDFromHex(line.ID)
		if err != nil {
			continue
		}

		item, found, err := lookup(itemID)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		if item.Stock < line.Qty {
			return nil, insufficientStockError{Name: item.Name, Stock: item.Stock}
		}
		plan = append(plan, stockReservation{itemID: itemID, qty: line.Qty})
	}
	return plan, nil
}

// reserveStock applies the planned decrements in order through apply, which
// reports whether the conditional decrement matched. On the first line that
// does not match (or errors) it stops and returns the reservations already
// applied, so the caller can release exactly those.
func reserveStock(plan []stockReservation, apply func(stockReservation) (bool, error)) ([]stockReservation, *stockReservation, error) {
	applied := make([]stockReservation, 0, len(plan))
	for i := range plan {
		ok, err := apply(plan[i])
		if err != nil {
			return applied, &plan[i], err
		}
		if !ok {
			return applied, &plan[i], nil
		}
		applied = append(applied, plan[i])
	}
	return applied, nil, nil
}

// newOrderID draws a 6-digit decimal order code. Codes are not checked for
// collisions against existing orders.
func newOrderID() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

func orderItemsFromRequest(lines []orderItemRequest) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{ID: line.ID, Qty: line.Qty, Name: line.Name})
	}
	return items
}

// releaseReservations gives back every already-applied decrement after a
// later line failed. Runs on a fresh context; the request one may be gone.
func releaseReservations(db *mongo.Database, applied []stockReservation, route string) {
	if len(applied) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, r := range applied {
		_, err := db.Collection("items").UpdateOne(ctx,
			bson.M{"_id": r.itemID},
			bson.M{"$inc": bson.M{"stock": r.qty}},
		)
		if err != nil {
			log.Printf("[%s] stock release failed for %s: %v", route, r.itemID.Hex(), err)
		}
	}
}

func currentItemStock(ctx context.Context, db *mongo.Database, itemID primitive.ObjectID) (string, int) {
	var item models.Item
	if err := db.Collection("items").FindOne(ctx, bson.M{"_id": itemID}).Decode(&item); err != nil {
		return "item", 0
	}
	return item.Name, item.Stock
}
