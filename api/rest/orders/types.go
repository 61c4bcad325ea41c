package orders

// request payload for placing an order
type CreateOrderRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Items     []Item `json:"items" binding:"required,min=1,dive"`
}

type Item struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateOrderResponse struct {
	OrderID  int    `json:"order_id"`
	Status   string `json:"status"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
