package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-backend/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderID:     "123456",
		Name:        "Ravi",
		Phone:       "9876543210",
		FinalTotal:  190,
		PaymentMode: "Online",
		Coupon:      "WELCOME50",
		Discount:    50,
		Items: []models.OrderItem{
			{ID: "a", Qty: 2, Name: "Samosa"},
			{ID: "b", Qty: 1, Name: "Chai (📦 PACKED)"},
		},
	}
}

func TestReceiptMessage(t *testing.T) {
	msg := receiptMessage(sampleOrder())

	assert.Contains(t, msg, "🧾 <b>ORDER #123456</b>")
	assert.Contains(t, msg, "👤 Ravi (9876543210)")
	assert.Contains(t, msg, "📍 No Location")
	assert.Contains(t, msg, "🟢 PAID ONLINE")
	assert.Contains(t, msg, "💰 Total: ₹190")
	assert.Contains(t, msg, "🏷️ Coupon: WELCOME50 (-₹50)")
	assert.Contains(t, msg, "- 2 x Samosa")
	assert.Contains(t, msg, "- 1 x Chai (📦 PACKED)")
}

func TestReceiptMessageCashWithLocation(t *testing.T) {
	order := sampleOrder()
	order.PaymentMode = "COD"
	order.Discount = 0
	order.Location = "https://maps.example.com/p/1"

	msg := receiptMessage(order)

	assert.Contains(t, msg, "🔴 CASH ON DELIVERY")
	assert.Contains(t, msg, `<a href="https://maps.example.com/p/1"><b>View on Map</b></a>`)
	assert.NotContains(t, msg, "🏷️ Coupon")
}

func TestVoiceMessageStripsPackedMarker(t *testing.T) {
	msg := voiceMessage(sampleOrder())

	assert.Contains(t, msg, "🔔 <b>NEW ORDER</b>")
	assert.Contains(t, msg, "Ravi")
	assert.Contains(t, msg, "2 Samosa, 1 Chai")
	assert.NotContains(t, msg, packedMarker)
}

func TestSendMessagePayload(t *testing.T) {
	var got sendMessageRequest
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher("test-token", "-100123")
	d.apiBase = srv.URL

	err := d.sendMessage(context.Background(), "hello", true)
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", path)
	assert.Equal(t, "-100123", got.ChatID)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.True(t, got.DisableNotification)
}

func TestSendMessageNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	d := NewDispatcher("test-token", "-100123")
	d.apiBase = srv.URL

	err := d.sendMessage(context.Background(), "hello", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestOrderPlacedSkipsWhenUnconfigured(t *testing.T) {
	d := NewDispatcher("", "")
	// Must not panic or attempt a network call.
	d.OrderPlaced(sampleOrder())
}
