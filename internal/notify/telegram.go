package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"canteen-backend/internal/models"
)

const defaultAPIBase = "https://api.telegram.org"

// packedMarker is stripped from item names in the spoken-style summary.
const packedMarker = "(📦 PACKED)"

// Dispatcher sends order alerts to a Telegram chat. Sends are best-effort:
// no retries, failures are logged and discarded, and callers are expected to
// invoke OrderPlaced from a detached goroutine.
type Dispatcher struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

func NewDispatcher(botToken, chatID string) *Dispatcher {
	return &Dispatcher{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultAPIBase,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// OrderPlaced sends the structured receipt (silently) and the condensed
// voice summary as two independent messages.
func (d *Dispatcher) OrderPlaced(order models.Order) {
	if d.botToken == "" || d.chatID == "" {
		log.Printf("[notify] telegram not configured, skipping order %s", order.OrderID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := d.sendMessage(ctx, receiptMessage(order), true); err != nil {
		log.Printf("[notify] receipt for order %s failed: %v", order.OrderID, err)
	}
	if err := d.sendMessage(ctx, voiceMessage(order), false); err != nil {
		log.Printf("[notify] voice alert for order %s failed: %v", order.OrderID, err)
	}
}

type sendMessageRequest struct {
	ChatID              string `json:"chat_id"`
	Text                string `json:"text"`
	ParseMode           string `json:"parse_mode"`
	DisableNotification bool   `json:"disable_notification"`
}

func (d *Dispatcher) sendMessage(ctx context.Context, text string, silent bool) error {
	payload := sendMessageRequest{
		ChatID:              d.chatID,
		Text:                text,
		ParseMode:           "HTML",
		DisableNotification: silent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", d.apiBase, d.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// receiptMessage is the structured HTML receipt: header, customer line,
// map link, payment badge, total with optional coupon line, itemized list.
func receiptMessage(order models.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("- %d x %s", item.Qty, item.Name))
	}

	locLine := "\n📍 No Location"
	if order.Location != "" {
		locLine = fmt.Sprintf("\n📍 <a href=%q><b>View on Map</b></a>", order.Location)
	}

	payStatus := "🔴 CASH ON DELIVERY"
	if order.PaymentMode == "Online" {
		payStatus = "🟢 PAID ONLINE"
	}

	discountLine := ""
	if order.Discount > 0 {
		discountLine = fmt.Sprintf("\n🏷️ Coupon: %s (-₹%s)", order.Coupon, formatAmount(order.Discount))
	}

	return fmt.Sprintf("🧾 <b>ORDER #%s</b>\n👤 %s (%s)%s\n\n<b>%s</b>\n💰 Total: ₹%s %s\n\n🛒 <b>ITEMS:</b>\n%s",
		order.OrderID, order.Name, order.Phone, locLine,
		payStatus, formatAmount(order.FinalTotal), discountLine,
		strings.Join(lines, "\n"))
}

// voiceMessage is the condensed summary read aloud by the kitchen bot, with
// the packaging marker stripped from item names.
func voiceMessage(order models.Order) string {
	parts := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		name := strings.Replace(item.Name, packedMarker, "", 1)
		parts = append(parts, fmt.Sprintf("%d %s", item.Qty, name))
	}
	return fmt.Sprintf("🔔 <b>NEW ORDER</b>\n%s\n%s", order.Name, strings.Join(parts, ", "))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
