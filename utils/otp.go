package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const OTPLength = 6

// GenerateOTP returns a 6-digit numeric one-time code using crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// OTPExpiry returns the expiration timestamp for a code issued now.
func OTPExpiry(minutes int) time.Time {
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}

func IsOTPExpired(expiresAt *time.Time) bool {
	return expiresAt == nil || time.Now().After(*expiresAt)
}

func ValidOTPFormat(otp string) bool {
	if len(otp) != OTPLength {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// VerifyOTP compares the submitted code against the stored one in constant
// time and checks expiry.
func VerifyOTP(provided string, stored *string, expiresAt *time.Time) bool {
	if stored == nil || IsOTPExpired(expiresAt) {
		return false
	}
	if !ValidOTPFormat(provided) || len(provided) != len(*stored) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(*stored)) == 1
}
