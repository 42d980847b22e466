package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// guardSelf blocks an admin from changing their own role or status.
func guardSelf(c *gin.Context, targetID int) error {
	if targetID == c.GetInt("user_id") {
		return models.ErrValidation("user.cannot_modify_self")
	}
	return nil
}

// GetUsers godoc
// @Summary List users (admin)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in name and email"
// @Param role query string false "Filter by role"
// @Param is_verified query bool false "Filter by verification"
// @Param is_active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetUsers(c *gin.Context) {
	page, limit := paginationParams(c)

	filter := repositories.UserFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if role := c.Query("role"); models.ValidRole(role) {
		filter.Role = role
	}
	if verified, err := strconv.ParseBool(c.Query("is_verified")); err == nil {
		filter.IsVerified = &verified
	}
	if active, err := strconv.ParseBool(c.Query("is_active")); err == nil {
		filter.IsActive = &active
	}

	users, total, err := ctrl.users.FindAll(c.Request.Context(), filter)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.RespondPaginated(c, "user.list_retrieved", users, models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetStatistics godoc
// @Summary User statistics (admin)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/users/statistics [get]
func (ctrl *UserController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.users.Statistics(c.Request.Context())
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "user.stats_retrieved", stats)
}

// GetUser godoc
// @Summary Get one user (admin)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	user, err := ctrl.users.FindByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("auth.user_not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "user.retrieved_success", user)
}

// UpdateUserRole godoc
// @Summary Change a user's role (admin)
// @Description Admins cannot change their own role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRoleRequest true "New role"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/role [patch]
func (ctrl *UserController) UpdateUserRole(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	if err := guardSelf(c, id); err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	err = ctrl.users.UpdateRole(c.Request.Context(), id, req.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("auth.user_not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "user.role_updated", gin.H{
		"id":   id,
		"role": req.Role,
	})
}

// UpdateUserStatus godoc
// @Summary Activate or deactivate a user (admin)
// @Description Admins cannot deactivate themselves
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateUserStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/status [patch]
func (ctrl *UserController) UpdateUserStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	if err := guardSelf(c, id); err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}

	err = ctrl.users.SetActive(c.Request.Context(), id, *req.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("auth.user_not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	messageKey := "user.deactivated"
	if *req.IsActive {
		messageKey = "user.activated"
	}
	i18n.Respond(c, http.StatusOK, messageKey, gin.H{
		"id":        id,
		"is_active": *req.IsActive,
	})
}

// DeleteUser godoc
// @Summary Soft-delete a user (admin)
// @Description Deactivates the account; admins cannot delete themselves
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	if err := guardSelf(c, id); err != nil {
		i18n.RespondError(c, err)
		return
	}

	err = ctrl.users.SetActive(c.Request.Context(), id, false)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("auth.user_not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "user.deleted_success", nil)
}
