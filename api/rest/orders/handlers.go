package orders

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codeberg.org/techworld/server/internal/errors"
	orderscore "codeberg.org/techworld/server/internal/orders"
)

// CreateOrderHandler godoc
// @Summary Place an order
// @Description Places a cash-on-delivery order with the commerce backend
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order request"
// @Success 201 {object} CreateOrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/orders [post]
func CreateOrderHandler(client *orderscore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		address := orderscore.Address{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address1:  req.Address,
			City:      req.City,
			Phone:     req.Phone,
			Email:     req.Email,
		}

		lineItems := make([]orderscore.LineItem, 0, len(req.Items))
		for _, item := range req.Items {
			lineItems = append(lineItems, orderscore.LineItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := client.CreateOrder(c.Request.Context(), orderscore.OrderRequest{
			Billing:   address,
			Shipping:  address,
			LineItems: lineItems,
		})

		if err != nil {
			errors.UpstreamFailure(c, "failed to place order", err)
			return
		}

		c.JSON(http.StatusCreated, CreateOrderResponse{
			OrderID:  order.ID,
			Status:   order.Status,
			Total:    order.Total,
			Currency: order.Currency,
		})
	}
}

// ProductBySlugHandler godoc
// @Summary Look a product up by slug
// @Description Fetches one product from the commerce backend by its slug
// @Tags orders
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} orderscore.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/orders/products/{slug} [get]
func ProductBySlugHandler(client *orderscore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := client.GetProductBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			errors.ProductNotFound(c)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// VariationsHandler godoc
// @Summary List product variations
// @Description Fetches the variations of a product from the commerce backend
// @Tags orders
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} orderscore.Variation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/orders/variations/{id} [get]
func VariationsHandler(client *orderscore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			errors.BadRequest(c, "invalid product id", err)
			return
		}

		variations, err := client.GetVariations(c.Request.Context(), productID)
		if err != nil {
			errors.UpstreamFailure(c, "failed to fetch variations", err)
			return
		}

		c.JSON(http.StatusOK, variations)
	}
}
