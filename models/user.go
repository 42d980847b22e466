package models

import "time"

type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	OTP                  *string    `json:"-"`
	OTPExpiresAt         *time.Time `json:"-"`
	ResetPasswordOTP     *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type UserStats struct {
	TotalUsers      int            `json:"total_users"`
	VerifiedUsers   int            `json:"verified_users"`
	UnverifiedUsers int            `json:"unverified_users"`
	ActiveUsers     int            `json:"active_users"`
	InactiveUsers   int            `json:"inactive_users"`
	RecentUsers     int            `json:"recent_users"`
	TodayUsers      int            `json:"today_users"`
	ByRole          map[string]int `json:"by_role"`
}
