package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/repositories"
	"souq-api/services"
	"souq-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type ProductController struct {
	products *repositories.ProductRepository
	cache    *services.ProductCache
}

func NewProductController(products *repositories.ProductRepository, cache *services.ProductCache) *ProductController {
	return &ProductController{products: products, cache: cache}
}

func paginationParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, models.ErrValidation("validation.invalid_request")
	}
	return &t, nil
}

// GetProducts godoc
// @Summary List products
// @Description Lists active products with optional search, category and price filters
// @Tags Products
// @Produce json
// @Param search query string false "Search in names, descriptions and SKU"
// @Param category_id query int false "Filter by category"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, limit := paginationParams(c)

	filter := repositories.ProductFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if categoryID, err := strconv.Atoi(c.Query("category_id")); err == nil && categoryID > 0 {
		filter.CategoryID = categoryID
	}
	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &maxPrice
	}
	if c.Query("include_inactive") == "true" && isAdmin(c) {
		filter.IncludeInactive = true
	}

	ctx := c.Request.Context()

	products, total, ok := ctrl.cache.Get(ctx, filter)
	if !ok {
		var err error
		products, total, err = ctrl.products.FindAll(ctx, filter)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		ctrl.cache.Set(ctx, filter, products, total)
	}

	totalPages := (total + limit - 1) / limit
	i18n.RespondPaginated(c, "product.list_retrieved", products, models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetProduct godoc
// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	product, err := ctrl.products.FindByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	if !product.IsActive && !isAdmin(c) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}

	i18n.Respond(c, http.StatusOK, "product.retrieved_success", product)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	ctx := c.Request.Context()

	categoryOK, err := ctrl.products.CategoryExists(ctx, req.CategoryID)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	if !categoryOK {
		i18n.RespondError(c, models.ErrNotFound("category.not_found"))
		return
	}

	sku := req.SKU
	if sku == "" {
		sku = utils.GenerateSKU(req.NameEn, req.NameAr)
	} else {
		exists, err := ctrl.products.SKUExists(ctx, sku)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		if exists {
			i18n.RespondError(c, models.ErrValidation("product.sku_exists"))
			return
		}
	}

	productionDate, err := parseDate(req.ProductionDate)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	product := &models.Product{
		Name:           models.Bilingual{EN: req.NameEn, AR: req.NameAr},
		Description:    models.Bilingual{EN: req.DescriptionEn, AR: req.DescriptionAr},
		Brand:          models.Bilingual{EN: req.BrandEn, AR: req.BrandAr},
		Price:          req.Price,
		Stock:          req.Stock,
		SKU:            sku,
		CategoryID:     req.CategoryID,
		IsActive:       true,
		CreatedBy:      c.GetInt("user_id"),
		ProductionDate: productionDate,
		ExpiryDate:     expiryDate,
	}
	if err := ctrl.products.Create(ctx, product); err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusCreated, "product.created_success", product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Stock is not updatable here; use the stock endpoint
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	ctx := c.Request.Context()

	product, err := ctrl.products.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	if req.NameEn != nil {
		product.Name.EN = *req.NameEn
	}
	if req.NameAr != nil {
		product.Name.AR = *req.NameAr
	}
	if req.DescriptionEn != nil {
		product.Description.EN = *req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		product.Description.AR = *req.DescriptionAr
	}
	if req.BrandEn != nil {
		product.Brand.EN = *req.BrandEn
	}
	if req.BrandAr != nil {
		product.Brand.AR = *req.BrandAr
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		categoryOK, err := ctrl.products.CategoryExists(ctx, *req.CategoryID)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		if !categoryOK {
			i18n.RespondError(c, models.ErrNotFound("category.not_found"))
			return
		}
		product.CategoryID = *req.CategoryID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := ctrl.products.Update(ctx, product); err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusOK, "product.updated_success", product)
}

// AdjustStock godoc
// @Summary Adjust product stock
// @Description Applies an add, subtract or set operation (default set). Only the product's creator or an admin may adjust stock.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body models.AdjustStockRequest true "Stock change"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /products/{id}/stock [patch]
func (ctrl *ProductController) AdjustStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.stock_invalid"))
		return
	}
	ctx := c.Request.Context()

	product, err := ctrl.products.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	// Soft-deleted products are out of scope for stock changes.
	if !product.IsActive {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}

	if product.CreatedBy != c.GetInt("user_id") && !isAdmin(c) {
		i18n.RespondError(c, models.ErrForbidden("product.access_denied"))
		return
	}

	operation := req.Operation
	if operation == "" {
		operation = models.StockOpSet
	}

	newStock, err := models.ApplyStockOperation(product.Stock, req.Stock, operation)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	if err := ctrl.products.SetStock(ctx, id, newStock); err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	product.Stock = newStock
	i18n.Respond(c, http.StatusOK, "product.stock_updated", gin.H{
		"id":        product.ID,
		"sku":       product.SKU,
		"stock":     product.Stock,
		"operation": operation,
	})
}

// DeleteProduct godoc
// @Summary Soft-delete a product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	ctx := c.Request.Context()

	err = ctrl.products.SetActive(ctx, id, false)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusOK, "product.deleted_success", nil)
}

// RestoreProduct godoc
// @Summary Restore a soft-deleted product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/restore [patch]
func (ctrl *ProductController) RestoreProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}
	ctx := c.Request.Context()

	err = ctrl.products.SetActive(ctx, id, true)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("product.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusOK, "product.restored_success", nil)
}
