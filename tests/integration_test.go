package tests

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFullOrderFlow validates the payload shapes of the end-to-end scenario:
// build a cart, check out, then walk the order through the kitchen.
func TestFullOrderFlow(t *testing.T) {
	t.Run("AddToCart", func(t *testing.T) {
		item := map[string]interface{}{
			"menu_item_id": 1,
			"quantity":     2,
		}
		body, _ := json.Marshal(item)

		// In real test: resp, err := http.Post("http://localhost:8080/api/cart/<id>/items", "application/json", bytes.NewReader(body))
		// For unit test, validate JSON structure
		assert.NotEmpty(t, body)
		var decoded map[string]int
		json.Unmarshal(body, &decoded)
		assert.Equal(t, 2, decoded["quantity"])
	})

	t.Run("Checkout", func(t *testing.T) {
		checkout := map[string]interface{}{
			"cart_id":          "b9e2f6e4-4b3e-4e0d-9a9b-2f1c33f1a001",
			"customer_name":    "Integration Tester",
			"contact_number":   "555-0100",
			"delivery_address": "456 Test Ave",
		}
		body, _ := json.Marshal(checkout)
		assert.NotEmpty(t, body)
	})

	t.Run("AdvanceStatus", func(t *testing.T) {
		update := map[string]string{"status": "confirmed"}
		body, _ := json.Marshal(update)

		// Would call: PUT http://localhost:8080/api/orders/1/status with a staff token
		assert.Contains(t, string(body), "confirmed")
	})

	t.Run("CustomerOrderView", func(t *testing.T) {
		// Would call: resp, err := http.Get("http://localhost:8080/api/orders/customer/2")
		// For unit test, verify the view response structure
		view := map[string]interface{}{
			"id":           1,
			"status":       "confirmed",
			"total_amount": 26.72,
			"items": []map[string]interface{}{
				{"menu_item_id": 1, "name": "Classic Burger", "price": 8.99, "quantity": 2},
				{"menu_item_id": 4, "name": "Fresh Orange Juice", "price": 4.49, "quantity": 1},
			},
		}
		body, _ := json.Marshal(view)
		assert.Contains(t, string(body), "total_amount")
	})
}

// TestQRCodeGeneration validates the QR tracking data format.
func TestQRCodeGeneration(t *testing.T) {
	// Would call: resp, err := http.Get("http://localhost:8080/api/orders/123/qrcode")
	orderID := 123
	expectedData := "http://localhost/track.html?order_id=123"
	assert.Contains(t, expectedData, strconv.Itoa(orderID))
}
