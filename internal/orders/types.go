package orders

import "net/http"

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

// Product is the subset of the commerce backend's product payload the
// assistant needs.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Permalink   string `json:"permalink"`
	Price       string `json:"price"`
	StockStatus string `json:"stock_status"`
	Description string `json:"description"`
}

type Variation struct {
	ID          int                  `json:"id"`
	Price       string               `json:"price"`
	Permalink   string               `json:"permalink"`
	StockStatus string               `json:"stock_status"`
	Image       variationImage       `json:"image"`
	Attributes  []variationAttribute `json:"attributes"`
}

type variationImage struct {
	Src string `json:"src"`
}

type variationAttribute struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

// AttributeMap flattens variation attributes into name/option pairs.
func (v Variation) AttributeMap() map[string]string {
	attrs := make(map[string]string, len(v.Attributes))
	for _, a := range v.Attributes {
		attrs[a.Name] = a.Option
	}
	return attrs
}

type LineItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type OrderRequest struct {
	PaymentMethod      string     `json:"payment_method"`
	PaymentMethodTitle string     `json:"payment_method_title"`
	SetPaid            bool       `json:"set_paid"`
	Billing            Address    `json:"billing"`
	Shipping           Address    `json:"shipping"`
	LineItems          []LineItem `json:"line_items"`
}

type Order struct {
	ID       int    `json:"id"`
	Status   string `json:"status"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
