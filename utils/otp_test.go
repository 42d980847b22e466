package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, otp, OTPLength)
		assert.True(t, ValidOTPFormat(otp))
		seen[otp] = true
	}
	// 50 draws from 900000 values should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}

func TestValidOTPFormat(t *testing.T) {
	assert.True(t, ValidOTPFormat("123456"))
	assert.False(t, ValidOTPFormat("12345"))
	assert.False(t, ValidOTPFormat("1234567"))
	assert.False(t, ValidOTPFormat("12345a"))
	assert.False(t, ValidOTPFormat(""))
}

func TestIsOTPExpired(t *testing.T) {
	future := time.Now().Add(5 * time.Minute)
	past := time.Now().Add(-1 * time.Minute)

	assert.False(t, IsOTPExpired(&future))
	assert.True(t, IsOTPExpired(&past))
	assert.True(t, IsOTPExpired(nil))
}

func TestVerifyOTP(t *testing.T) {
	stored := "654321"
	valid := time.Now().Add(10 * time.Minute)
	expired := time.Now().Add(-1 * time.Minute)

	assert.True(t, VerifyOTP("654321", &stored, &valid))
	assert.False(t, VerifyOTP("654322", &stored, &valid))
	assert.False(t, VerifyOTP("654321", &stored, &expired))
	assert.False(t, VerifyOTP("654321", nil, &valid))
	assert.False(t, VerifyOTP("abc123", &stored, &valid))
}

func TestOTPExpiry(t *testing.T) {
	expiry := OTPExpiry(10)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiry, time.Second)
}
