package models

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:  {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusShipped: true},
	StatusShipped:    {StatusDelivered: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// CanCancel reports whether an order may still be cancelled with stock
// restoration. Only pending and confirmed orders qualify.
func (s OrderStatus) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type OrderItem struct {
	ProductID   int       `json:"product_id"`
	ProductName Bilingual `json:"product_name,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Subtotal    float64   `json:"subtotal"`
}

type Order struct {
	ID              int             `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          int             `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

const (
	PaymentCreditCard     = "credit_card"
	PaymentDebitCard      = "debit_card"
	PaymentPaypal         = "paypal"
	PaymentCashOnDelivery = "cash_on_delivery"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPaypal, PaymentCashOnDelivery:
		return true
	}
	return false
}

// BuildOrderItem validates one requested line against the product row read
// inside the placement transaction and snapshots the unit price. Checks
// run in a fixed order: existence (nil row is the caller's signal), then
// availability, then stock.
func BuildOrderItem(product *Product, quantity int) (OrderItem, error) {
	if product == nil {
		return OrderItem{}, ErrNotFound("product.not_found")
	}
	if !product.IsActive {
		return OrderItem{}, ErrUnavailable("product.not_available")
	}
	if quantity < 1 {
		return OrderItem{}, ErrValidation("validation.invalid_request")
	}
	if product.Stock < quantity {
		return OrderItem{}, ErrInsufficientStock("order.insufficient_stock")
	}

	return OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		Quantity:    quantity,
		Price:       product.Price,
		Subtotal:    product.Price * float64(quantity),
	}, nil
}

// SumItems returns the order total as the sum of item subtotals.
func SumItems(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

type OrderStatusStat struct {
	Status      OrderStatus `json:"status"`
	Count       int         `json:"count"`
	TotalAmount float64     `json:"total_amount"`
}

type OrderTotals struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}
