package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	number := GenerateOrderNumber(now)
	assert.Regexp(t, `^ORD-20260830-\d{6}$`, number)
}
