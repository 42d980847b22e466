package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns a human-readable order number in the form
// ORD-YYYYMMDD-NNNNNN. Uniqueness is enforced by the orders.order_number
// constraint; callers regenerate on collision.
func GenerateOrderNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), suffix)
}
