package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"canteen-backend/internal/models"
)

type verifyCouponRequest struct {
	Code  string  `json:"code" binding:"required"`
	Total float64 `json:"total"`
}

type minOrderNotMetError struct {
	Min float64
}

func (e minOrderNotMetError) Error() string {
	return fmt.Sprintf("Min order ₹%s required!", strconv.FormatFloat(e.Min, 'f', -1, 64))
}

// VerifyCoupon is the read-only pre-checkout validation path. The order
// workflow does not re-check the coupon at commit time; the client submits
// the discount it was quoted here.
func VerifyCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/verify-coupon"
		defer handlePanic(c, route)

		var req verifyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var coupon models.Coupon
		err := db.Collection("coupons").FindOne(ctx,
			bson.M{"code": strings.ToUpper(req.Code)},
		).Decode(&coupon)
		if err == mongo.ErrNoDocuments {
			respondFailure(c, route, "Invalid Coupon Code")
			return
		}
		if err != nil {
			respondFailure(c, route, serverErrorMessage)
			return
		}

		discount, newTotal, err := applyCoupon(coupon, req.Total)
		if err != nil {
			respondFailure(c, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"discount": discount,
			"newTotal": newTotal,
			"code":     coupon.Code,
		})
	}
}

// applyCoupon computes the discount for a cart total: the full value for a
// flat coupon, floor(total*value/100) for a percent coupon.
func applyCoupon(coupon models.Coupon, total float64) (float64, float64, error) {
	if total < coupon.MinOrder {
		return 0, 0, minOrderNotMetError{Min: coupon.MinOrder}
	}

	var discount float64
	switch coupon.Type {
	case "flat":
		discount = coupon.Value
	case "percent":
		discount = math.Floor(total * coupon.Value / 100)
	}

	return discount, total - discount, nil
}
