package services

import (
	"context"
	"testing"
	"time"

	"souq-api/models"
	"souq-api/repositories"
	"souq-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, repositories.ErrNoRows
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (f *fakeUserStore) SetOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error {
	user, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.OTP = &otp
	user.OTPExpiresAt = &expiresAt
	return nil
}

func (f *fakeUserStore) MarkVerified(ctx context.Context, userID int) error {
	user, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiresAt = nil
	return nil
}

func (f *fakeUserStore) SetResetPasswordOTP(ctx context.Context, userID int, otp string, expiresAt time.Time) error {
	user, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.ResetPasswordOTP = &otp
	user.ResetPasswordExpires = &expiresAt
	return nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	user, err := f.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	user.ResetPasswordOTP = nil
	user.ResetPasswordExpires = nil
	return nil
}

func newTestAuthService(store UserStore, max int) *AuthService {
	return NewAuthService(store, newMemoryRateLimiter(max, time.Hour), &logSender{})
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestRegisterAndVerifyEmail(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store, 5)

	user, err := svc.Register(ctx, models.RegisterRequest{
		Name: "Omar", Email: "omar@example.com", Password: "password1",
	}, "en")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	require.NotNil(t, user.OTP)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, models.RegisterRequest{
			Name: "Omar", Email: "omar@example.com", Password: "password1",
		}, "en")
		assert.Equal(t, models.CodeValidationFailed, appCode(t, err))
	})

	t.Run("wrong otp rejected", func(t *testing.T) {
		wrong := "000000"
		if *user.OTP == wrong {
			wrong = "000001"
		}
		err := svc.VerifyEmail(ctx, models.VerifyEmailRequest{
			Email: "omar@example.com", OTP: wrong,
		}, "en")
		assert.Equal(t, models.CodeValidationFailed, appCode(t, err))
	})

	t.Run("correct otp verifies", func(t *testing.T) {
		err := svc.VerifyEmail(ctx, models.VerifyEmailRequest{
			Email: "omar@example.com", OTP: *user.OTP,
		}, "en")
		require.NoError(t, err)
		assert.True(t, user.IsVerified)
		assert.Nil(t, user.OTP)
	})

	t.Run("second verification rejected", func(t *testing.T) {
		err := svc.VerifyEmail(ctx, models.VerifyEmailRequest{
			Email: "omar@example.com", OTP: "123456",
		}, "en")
		assert.Equal(t, models.CodeValidationFailed, appCode(t, err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store, 5)

	hash, err := utils.HashPassword("password1")
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, &models.User{
		Name: "Sara", Email: "sara@example.com", Password: hash,
		Role: models.RoleUser, IsVerified: true, IsActive: true,
	}))

	t.Run("success", func(t *testing.T) {
		token, user, err := svc.Login(ctx, models.LoginRequest{
			Email: "sara@example.com", Password: "password1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "sara@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "sara@example.com", Password: "nope-nope",
		})
		assert.Equal(t, models.CodeUnauthorized, appCode(t, err))
	})

	t.Run("unknown email gets the same code", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "ghost@example.com", Password: "password1",
		})
		assert.Equal(t, models.CodeUnauthorized, appCode(t, err))
	})

	t.Run("unverified account", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, &models.User{
			Name: "New", Email: "new@example.com", Password: hash,
			Role: models.RoleUser, IsVerified: false, IsActive: true,
		}))
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "new@example.com", Password: "password1",
		})
		assert.Equal(t, models.CodeForbidden, appCode(t, err))
	})
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store, 2)

	require.NoError(t, store.Create(ctx, &models.User{
		Name: "Amina", Email: "amina@example.com", Password: "hash",
		Role: models.RoleUser, IsVerified: true, IsActive: true,
	}))

	// Unknown and known emails get identical treatment: success within
	// the window, 429 beyond it.
	for i := 0; i < 2; i++ {
		require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "ghost@example.com"}, "en"))
		require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "amina@example.com"}, "en"))
	}

	err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "ghost@example.com"}, "en")
	assert.Equal(t, models.CodeTooManyRequests, appCode(t, err))

	err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "amina@example.com"}, "en")
	assert.Equal(t, models.CodeTooManyRequests, appCode(t, err))
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store, 5)

	require.NoError(t, store.Create(ctx, &models.User{
		Name: "Amina", Email: "amina@example.com", Password: "old-hash",
		Role: models.RoleUser, IsVerified: true, IsActive: true,
	}))
	require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "amina@example.com"}, "en"))

	user := store.byEmail["amina@example.com"]
	require.NotNil(t, user.ResetPasswordOTP)
	otp := *user.ResetPasswordOTP

	t.Run("wrong otp", func(t *testing.T) {
		wrong := "000000"
		if otp == wrong {
			wrong = "000001"
		}
		err := svc.ResetPassword(ctx, models.ResetPasswordRequest{
			Email: "amina@example.com", OTP: wrong, NewPassword: "brand-new-1",
		})
		assert.Equal(t, models.CodeValidationFailed, appCode(t, err))
	})

	t.Run("unknown email gets the same code", func(t *testing.T) {
		err := svc.ResetPassword(ctx, models.ResetPasswordRequest{
			Email: "ghost@example.com", OTP: otp, NewPassword: "brand-new-1",
		})
		assert.Equal(t, models.CodeValidationFailed, appCode(t, err))
	})

	t.Run("success clears the reset otp", func(t *testing.T) {
		err := svc.ResetPassword(ctx, models.ResetPasswordRequest{
			Email: "amina@example.com", OTP: otp, NewPassword: "brand-new-1",
		})
		require.NoError(t, err)
		assert.Nil(t, user.ResetPasswordOTP)
		assert.NotEqual(t, "old-hash", user.Password)
	})
}
