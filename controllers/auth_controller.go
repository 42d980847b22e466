package controllers

import (
	"net/http"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func requestLang(c *gin.Context) string {
	if c.GetBool(i18n.CtxBilingual) {
		return i18n.LangEN
	}
	return c.GetString(i18n.CtxLang)
}

// Register godoc
// @Summary Register a new account
// @Description Creates an unverified account and emails a 6-digit verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	user, err := ctrl.auth.Register(c.Request.Context(), req, requestLang(c))
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusCreated, "auth.registration_success", gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// VerifyEmail godoc
// @Summary Verify email with OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.VerifyEmailRequest true "Email and OTP"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/verify-email [post]
func (ctrl *AuthController) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	if err := ctrl.auth.VerifyEmail(c.Request.Context(), req, requestLang(c)); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.email_verification_success", nil)
}

// ResendOTP godoc
// @Summary Resend the verification OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResendOTPRequest true "Email"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/resend-otp [post]
func (ctrl *AuthController) ResendOTP(c *gin.Context) {
	var req models.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	if err := ctrl.auth.ResendOTP(c.Request.Context(), req, requestLang(c)); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.otp_resent", nil)
}

// Login godoc
// @Summary Log in
// @Description Authenticates a verified account and returns a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	token, user, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.login_success", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// ForgotPassword godoc
// @Summary Request a password reset OTP
// @Description Always responds with success, whether or not the account exists
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Email"
// @Success 200 {object} models.Response
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	if err := ctrl.auth.ForgotPassword(c.Request.Context(), req, requestLang(c)); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.password_reset_otp_sent", nil)
}

// ResetPassword godoc
// @Summary Reset password with OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	if err := ctrl.auth.ResetPassword(c.Request.Context(), req); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.password_reset_success", nil)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "auth.profile_retrieved", user)
}
