package handlers

import (
	"testing"

	"canteen-backend/internal/models"
)

func TestApplyCouponFlat(t *testing.T) {
	coupon := models.Coupon{Code: "WELCOME50", Type: "flat", Value: 50, MinOrder: 150}

	discount, newTotal, err := applyCoupon(coupon, 200)
	if err != nil {
		t.Fatalf("applyCoupon returned error: %v", err)
	}
	if discount != 50 {
		t.Fatalf("expected flat discount 50, got %v", discount)
	}
	if newTotal != 150 {
		t.Fatalf("expected newTotal 150, got %v", newTotal)
	}
}

func TestApplyCouponPercentFloors(t *testing.T) {
	coupon := models.Coupon{Code: "FOODIE10", Type: "percent", Value: 10, MinOrder: 100}

	discount, newTotal, err := applyCoupon(coupon, 105)
	if err != nil {
		t.Fatalf("applyCoupon returned error: %v", err)
	}
	if discount != 10 {
		t.Fatalf("expected floored discount 10 for total 105, got %v", discount)
	}
	if newTotal != 95 {
		t.Fatalf("expected newTotal 95, got %v", newTotal)
	}
}

func TestApplyCouponBelowMinOrder(t *testing.T) {
	coupon := models.Coupon{Code: "WELCOME50", Type: "flat", Value: 50, MinOrder: 150}

	_, _, err := applyCoupon(coupon, 149)
	if err == nil {
		t.Fatal("expected min-order error for total below threshold")
	}
	if err.Error() != "Min order ₹150 required!" {
		t.Fatalf("unexpected min-order message: %q", err.Error())
	}
}

func TestApplyCouponAtExactMinOrder(t *testing.T) {
	coupon := models.Coupon{Code: "WELCOME50", Type: "flat", Value: 50, MinOrder: 150}

	discount, _, err := applyCoupon(coupon, 150)
	if err != nil {
		t.Fatalf("total equal to minOrder should qualify, got error: %v", err)
	}
	if discount != 50 {
		t.Fatalf("expected discount 50, got %v", discount)
	}
}
