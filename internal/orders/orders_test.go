package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "iPhone 15", "iphone-15"},
		{"url encoded", "iPhone%2015%20Pro", "iphone-15-pro"},
		{"ampersand dropped", "MacBook & iPad", "macbook-ipad"},
		{"diacritics stripped", "Điện thoại màu đen", "ien-thoai-mau-en"},
		{"punctuation collapsed", "iPad Air (M3) 11 inch Wi-Fi", "ipad-air-m3-11-inch-wi-fi"},
		{"leading and trailing", "  iPhone  ", "iphone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:        server.URL,
		ConsumerKey:    "ck_test",
		ConsumerSecret: "cs_test",
	})
}

func TestGetProductBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wc/v3/products" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}

		if user, pass, ok := r.BasicAuth(); !ok || user != "ck_test" || pass != "cs_test" {
			t.Error("Missing or wrong basic auth")
		}

		if slug := r.URL.Query().Get("slug"); slug != "iphone-15" {
			t.Errorf("Expected slug iphone-15, got %q", slug)
		}

		json.NewEncoder(w).Encode([]Product{ //nolint:errcheck
			{ID: 42, Name: "iPhone 15", Slug: "iphone-15", StockStatus: "instock"},
		})
	})

	product, err := client.GetProductBySlug(context.Background(), "iPhone 15")
	if err != nil {
		t.Fatalf("GetProductBySlug failed: %v", err)
	}

	if product.ID != 42 || product.Name != "iPhone 15" {
		t.Errorf("Unexpected product: %+v", product)
	}
}

func TestGetProductBySlugNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Product{}) //nolint:errcheck
	})

	if _, err := client.GetProductBySlug(context.Background(), "unknown"); err == nil {
		t.Fatal("Expected an error for unknown slug")
	}
}

func TestCreateOrder(t *testing.T) {
	var received OrderRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/wp-json/wc/v3/orders" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("Failed to decode order: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{ID: 7, Status: "processing", Total: "9500000", Currency: "VND"}) //nolint:errcheck
	})

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Billing:   Address{FirstName: "An", LastName: "Nguyễn", Address1: "1 Lê Lợi", City: "Hà Nội"},
		Shipping:  Address{FirstName: "An", LastName: "Nguyễn", Address1: "1 Lê Lợi", City: "Hà Nội"},
		LineItems: []LineItem{{ProductID: 42, Quantity: 1}},
	})

	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if order.ID != 7 || order.Status != "processing" {
		t.Errorf("Unexpected order: %+v", order)
	}

	// cod is the default payment method
	if received.PaymentMethod != "cod" {
		t.Errorf("Expected default payment method cod, got %q", received.PaymentMethod)
	}
}

func TestCreateOrderRequiresLineItems(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost"})

	if _, err := client.CreateOrder(context.Background(), OrderRequest{}); err == nil {
		t.Fatal("Expected an error for empty order")
	}
}
