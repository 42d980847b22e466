package models

import "time"

type Product struct {
	ID             int        `json:"id"`
	Name           Bilingual  `json:"name"`
	Description    Bilingual  `json:"description"`
	Brand          Bilingual  `json:"brand"`
	Price          float64    `json:"price"`
	Stock          int        `json:"stock"`
	SKU            string     `json:"sku"`
	CategoryID     int        `json:"category_id"`
	IsActive       bool       `json:"is_active"`
	CreatedBy      int        `json:"created_by"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiryDate != nil && now.After(*p.ExpiryDate)
}

// IsNearExpiry reports whether the product expires within the given number
// of days but has not expired yet.
func (p *Product) IsNearExpiry(now time.Time, days int) bool {
	if p.ExpiryDate == nil {
		return false
	}
	limit := now.AddDate(0, 0, days)
	return !p.ExpiryDate.After(limit) && p.ExpiryDate.After(now)
}

// Stock adjustment operations accepted by the direct admin path.
const (
	StockOpAdd      = "add"
	StockOpSubtract = "subtract"
	StockOpSet      = "set"
)

func ValidStockOperation(op string) bool {
	switch op {
	case StockOpAdd, StockOpSubtract, StockOpSet:
		return true
	}
	return false
}

// ApplyStockOperation computes the stock level after an adjustment.
// A subtraction below zero is an insufficient-stock failure, not a
// validation one.
func ApplyStockOperation(current, amount int, op string) (int, error) {
	if !ValidStockOperation(op) {
		return 0, ErrValidation("validation.operation_invalid")
	}
	if amount < 0 {
		return 0, ErrValidation("validation.stock_invalid")
	}

	next := amount
	switch op {
	case StockOpAdd:
		next = current + amount
	case StockOpSubtract:
		next = current - amount
	}

	if next < 0 {
		return 0, ErrInsufficientStock("validation.insufficient_stock")
	}
	return next, nil
}
