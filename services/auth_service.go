package services

import (
	"context"
	"errors"
	"log"
	"time"

	"souq-api/config"
	"souq-api/models"
	"souq-api/repositories"
	"souq-api/utils"
)

// UserStore is the persistence surface the auth flows depend on.
// *repositories.UserRepository implements it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	SetOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, userID int) error
	SetResetPasswordOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
}

// AuthService orchestrates registration, email verification and the
// password flows. OTP issuance goes through the rate limiter; email
// delivery is fire-and-forget so a slow provider never blocks a request.
type AuthService struct {
	users   UserStore
	limiter RateLimiter
	emails  EmailSender
}

func NewAuthService(users UserStore, limiter RateLimiter, emails EmailSender) *AuthService {
	return &AuthService{users: users, limiter: limiter, emails: emails}
}

func (s *AuthService) otpExpiry() time.Time {
	minutes := 10
	if config.AppConfig != nil {
		minutes = config.AppConfig.OTPExpiresMinutes
	}
	return utils.OTPExpiry(minutes)
}

func (s *AuthService) sendAsync(send func() error, what, email string) {
	go func() {
		if err := send(); err != nil {
			log.Printf("failed to send %s email to %s: %v", what, email, err)
		}
	}()
}

// Register creates an unverified account and emails the verification OTP.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest, lang string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrValidation("auth.email_already_exists")
	} else if !errors.Is(err, repositories.ErrNoRows) {
		return nil, err
	}

	allowed, err := s.limiter.Allow(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, models.ErrTooManyRequests("auth.too_many_otp_requests")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expiresAt := s.otpExpiry()

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		Role:         models.RoleUser,
		IsVerified:   false,
		IsActive:     true,
		OTP:          &otp,
		OTPExpiresAt: &expiresAt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.limiter.Record(ctx, req.Email); err != nil {
		log.Printf("failed to record OTP request for %s: %v", req.Email, err)
	}
	s.sendAsync(func() error {
		return s.emails.SendVerificationEmail(user.Email, user.Name, otp, lang)
	}, "verification", user.Email)

	return user, nil
}

// VerifyEmail checks the OTP and activates the account.
func (s *AuthService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest, lang string) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return models.ErrNotFound("auth.user_not_found")
		}
		return err
	}

	if user.IsVerified {
		return models.ErrValidation("auth.already_verified")
	}
	if !utils.VerifyOTP(req.OTP, user.OTP, user.OTPExpiresAt) {
		return models.ErrValidation("auth.invalid_otp")
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}

	if err := s.limiter.Clear(ctx, user.Email); err != nil {
		log.Printf("failed to clear OTP window for %s: %v", user.Email, err)
	}
	s.sendAsync(func() error {
		return s.emails.SendWelcomeEmail(user.Email, user.Name, lang)
	}, "welcome", user.Email)

	return nil
}

// ResendOTP issues a fresh verification code for an unverified account.
func (s *AuthService) ResendOTP(ctx context.Context, req models.ResendOTPRequest, lang string) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return models.ErrNotFound("auth.user_not_found")
		}
		return err
	}
	if user.IsVerified {
		return models.ErrValidation("auth.already_verified")
	}

	allowed, err := s.limiter.Allow(ctx, user.Email)
	if err != nil {
		return err
	}
	if !allowed {
		return models.ErrTooManyRequests("auth.too_many_otp_requests")
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, user.ID, otp, s.otpExpiry()); err != nil {
		return err
	}

	if err := s.limiter.Record(ctx, user.Email); err != nil {
		log.Printf("failed to record OTP request for %s: %v", user.Email, err)
	}
	s.sendAsync(func() error {
		return s.emails.SendVerificationEmail(user.Email, user.Name, otp, lang)
	}, "verification", user.Email)

	return nil
}

// Login authenticates and returns a signed JWT with the user.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return "", nil, models.ErrUnauthorized("auth.invalid_credentials")
		}
		return "", nil, err
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		return "", nil, models.ErrUnauthorized("auth.invalid_credentials")
	}
	if !user.IsActive {
		return "", nil, models.ErrForbidden("auth.account_inactive")
	}
	if !user.IsVerified {
		return "", nil, models.ErrForbidden("auth.email_not_verified")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword sends a reset OTP. The rate limiter runs on the request
// email before the account lookup, so the response (success or 429) is
// identical whether or not the account exists and the endpoint cannot be
// used to probe emails.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest, lang string) error {
	allowed, err := s.limiter.Allow(ctx, req.Email)
	if err != nil {
		return err
	}
	if !allowed {
		return models.ErrTooManyRequests("auth.too_many_otp_requests")
	}
	if err := s.limiter.Record(ctx, req.Email); err != nil {
		log.Printf("failed to record OTP request for %s: %v", req.Email, err)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil
		}
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetResetPasswordOTP(ctx, user.ID, otp, s.otpExpiry()); err != nil {
		return err
	}

	s.sendAsync(func() error {
		return s.emails.SendPasswordResetEmail(user.Email, user.Name, otp, lang)
	}, "password reset", user.Email)

	return nil
}

// ResetPassword validates the reset OTP and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return models.ErrValidation("auth.invalid_otp")
		}
		return err
	}

	if !utils.VerifyOTP(req.OTP, user.ResetPasswordOTP, user.ResetPasswordExpires) {
		return models.ErrValidation("auth.invalid_otp")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	if err := s.limiter.Clear(ctx, user.Email); err != nil {
		log.Printf("failed to clear OTP window for %s: %v", user.Email, err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, models.ErrNotFound("auth.user_not_found")
		}
		return nil, err
	}
	return user, nil
}
