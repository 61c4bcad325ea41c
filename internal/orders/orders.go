package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// shared HTTP client for commerce backend calls
var wooHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func NewClient(config Config) *Client {
	return &Client{
		baseURL:        strings.TrimRight(config.BaseURL, "/"),
		consumerKey:    config.ConsumerKey,
		consumerSecret: config.ConsumerSecret,
		httpClient:     wooHTTPClient,
	}
}

// Slugify converts a product name, possibly URL encoded, into the slug
// form the commerce backend uses. Diacritics are stripped so Vietnamese
// names resolve.
func Slugify(name string) string {
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}

	name = strings.ReplaceAll(name, "&", "")

	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, name); err == nil {
		name = stripped
	}

	name = strings.ToLower(name)
	name = slugPattern.ReplaceAllString(name, "-")

	return strings.Trim(name, "-")
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("commerce request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// GetProductBySlug looks a product up by its slug.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	query := url.Values{}
	query.Set("slug", Slugify(slug))
	query.Set("per_page", "1")

	var products []Product
	if err := c.doJSON(ctx, "GET", "/wp-json/wc/v3/products", query, nil, &products); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("no product found with slug %q", Slugify(slug))
	}

	return &products[0], nil
}

// GetVariations returns the variations of a product.
func (c *Client) GetVariations(ctx context.Context, productID int) ([]Variation, error) {
	path := fmt.Sprintf("/wp-json/wc/v3/products/%d/variations", productID)

	var variations []Variation
	if err := c.doJSON(ctx, "GET", path, nil, nil, &variations); err != nil {
		return nil, err
	}

	return variations, nil
}

// CreateOrder places an order with the commerce backend.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("order has no line items")
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "cod"
		req.PaymentMethodTitle = "Thanh toán khi nhận hàng"
	}

	var order Order
	if err := c.doJSON(ctx, "POST", "/wp-json/wc/v3/orders", nil, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
