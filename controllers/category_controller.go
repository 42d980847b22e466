package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/repositories"
	"souq-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController(categories *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("user_role") == models.RoleAdmin
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, models.ErrValidation("validation.invalid_id")
	}
	return id, nil
}

// GetCategories godoc
// @Summary List categories
// @Description Lists active categories with their active product counts. Admins may pass include_inactive=true.
// @Tags Categories
// @Produce json
// @Param include_inactive query bool false "Include soft-deleted categories (admin only)"
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("include_inactive") == "true" && isAdmin(c) {
		categories, err := ctrl.categories.FindAll(ctx, true)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		i18n.Respond(c, http.StatusOK, "category.list_retrieved", categories)
		return
	}

	categories, err := ctrl.categories.FindAllWithCounts(ctx)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	i18n.Respond(c, http.StatusOK, "category.list_retrieved", categories)
}

// GetCategory godoc
// @Summary Get one category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	category, err := ctrl.categories.FindByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	// Soft-deleted categories are invisible to non-admins.
	if !category.IsActive && !isAdmin(c) {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}

	i18n.Respond(c, http.StatusOK, "category.retrieved_success", category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	ctx := c.Request.Context()

	slug := utils.Slugify(req.NameEn)
	exists, err := ctrl.categories.SlugExists(ctx, slug, 0)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	if exists {
		slug = utils.DedupeSlug(slug)
	}

	category := &models.Category{
		Name:        models.Bilingual{EN: req.NameEn, AR: req.NameAr},
		Description: models.Bilingual{EN: req.DescriptionEn, AR: req.DescriptionAr},
		Slug:        slug,
		IsActive:    true,
		SortOrder:   req.SortOrder,
		CreatedBy:   c.GetInt("user_id"),
	}
	if err := ctrl.categories.Create(ctx, category); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusCreated, "category.created_success", category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	ctx := c.Request.Context()

	category, err := ctrl.categories.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	if req.NameEn != nil && *req.NameEn != category.Name.EN {
		category.Name.EN = *req.NameEn
		slug := utils.Slugify(category.Name.EN)
		exists, err := ctrl.categories.SlugExists(ctx, slug, category.ID)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		if exists {
			slug = utils.DedupeSlug(slug)
		}
		category.Slug = slug
	}
	if req.NameAr != nil {
		category.Name.AR = *req.NameAr
	}
	if req.DescriptionEn != nil {
		category.Description.EN = *req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		category.Description.AR = *req.DescriptionAr
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := ctrl.categories.Update(ctx, category); err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "category.updated_success", category)
}

// DeleteCategory godoc
// @Summary Soft-delete a category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	err = ctrl.categories.SetActive(c.Request.Context(), id, false)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "category.deleted_success", nil)
}

// RestoreCategory godoc
// @Summary Restore a soft-deleted category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id}/restore [patch]
func (ctrl *CategoryController) RestoreCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	err = ctrl.categories.SetActive(c.Request.Context(), id, true)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "category.restored_success", nil)
}
