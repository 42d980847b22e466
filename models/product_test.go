package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStockOperation(t *testing.T) {
	assert.True(t, ValidStockOperation(StockOpAdd))
	assert.True(t, ValidStockOperation(StockOpSubtract))
	assert.True(t, ValidStockOperation(StockOpSet))
	assert.False(t, ValidStockOperation("increment"))
	assert.False(t, ValidStockOperation(""))
}

func TestApplyStockOperation(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		op       string
		want     int
		wantCode string
	}{
		{"add", 10, 5, StockOpAdd, 15, ""},
		{"subtract", 10, 4, StockOpSubtract, 6, ""},
		{"subtract to zero", 10, 10, StockOpSubtract, 0, ""},
		{"set", 10, 3, StockOpSet, 3, ""},
		{"set to zero", 10, 0, StockOpSet, 0, ""},
		{"subtract below zero", 3, 5, StockOpSubtract, 0, CodeInsufficientStock},
		{"negative amount", 10, -1, StockOpAdd, 0, CodeValidationFailed},
		{"unknown operation", 10, 5, "increment", 0, CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyStockOperation(tt.current, tt.amount, tt.op)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestProductInStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).InStock())
	assert.False(t, (&Product{Stock: 0}).InStock())
}

func TestProductExpiry(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	soon := now.Add(48 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	assert.True(t, (&Product{ExpiryDate: &past}).IsExpired(now))
	assert.False(t, (&Product{ExpiryDate: &soon}).IsExpired(now))
	assert.False(t, (&Product{}).IsExpired(now))

	assert.True(t, (&Product{ExpiryDate: &soon}).IsNearExpiry(now, 7))
	assert.False(t, (&Product{ExpiryDate: &far}).IsNearExpiry(now, 7))
	assert.False(t, (&Product{ExpiryDate: &past}).IsNearExpiry(now, 7))
	assert.False(t, (&Product{}).IsNearExpiry(now, 7))
}
