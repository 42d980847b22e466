package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to shipped", StatusPending, StatusShipped, false},
		{"confirmed to processing", StatusConfirmed, StatusProcessing, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"processing to shipped", StatusProcessing, StatusShipped, true},
		{"processing to cancelled", StatusProcessing, StatusCancelled, false},
		{"shipped to delivered", StatusShipped, StatusDelivered, true},
		{"shipped to cancelled", StatusShipped, StatusCancelled, false},
		{"delivered is terminal", StatusDelivered, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, StatusPending.CanCancel())
	assert.True(t, StatusConfirmed.CanCancel())
	assert.False(t, StatusProcessing.CanCancel())
	assert.False(t, StatusShipped.CanCancel())
	assert.False(t, StatusDelivered.CanCancel())
	assert.False(t, StatusCancelled.CanCancel())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus("pending"))
	assert.True(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus("refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func activeProduct() *Product {
	return &Product{
		ID:       1,
		Name:     Bilingual{EN: "Dates", AR: "تمر"},
		Price:    12.5,
		Stock:    10,
		SKU:      "DATE-123456",
		IsActive: true,
	}
}

func TestBuildOrderItem(t *testing.T) {
	t.Run("snapshots price and computes subtotal", func(t *testing.T) {
		item, err := BuildOrderItem(activeProduct(), 3)
		require.NoError(t, err)

		assert.Equal(t, 1, item.ProductID)
		assert.Equal(t, "Dates", item.ProductName.EN)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 12.5, item.Price)
		assert.Equal(t, 37.5, item.Subtotal)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := BuildOrderItem(nil, 1)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeNotFound, appErr.Code)
	})

	t.Run("inactive product", func(t *testing.T) {
		p := activeProduct()
		p.IsActive = false

		_, err := BuildOrderItem(p, 1)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeUnavailable, appErr.Code)
	})

	t.Run("inactive wins over stock", func(t *testing.T) {
		p := activeProduct()
		p.IsActive = false
		p.Stock = 0

		_, err := BuildOrderItem(p, 5)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeUnavailable, appErr.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		p := activeProduct()
		p.Stock = 2

		_, err := BuildOrderItem(p, 3)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeInsufficientStock, appErr.Code)
	})

	t.Run("exact stock is allowed", func(t *testing.T) {
		p := activeProduct()
		p.Stock = 3

		item, err := BuildOrderItem(p, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := BuildOrderItem(activeProduct(), 0)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeValidationFailed, appErr.Code)
	})
}

func TestSumItems(t *testing.T) {
	items := []OrderItem{
		{Subtotal: 10.5},
		{Subtotal: 4.25},
		{Subtotal: 0},
	}
	assert.Equal(t, 14.75, SumItems(items))
	assert.Equal(t, 0.0, SumItems(nil))
}

func TestTotalQuantity(t *testing.T) {
	order := &Order{Items: []OrderItem{{Quantity: 2}, {Quantity: 5}}}
	assert.Equal(t, 7, order.TotalQuantity())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCashOnDelivery))
	assert.True(t, ValidPaymentMethod(PaymentCreditCard))
	assert.False(t, ValidPaymentMethod("bitcoin"))
}
