package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/repositories"
	"souq-api/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type OrderController struct {
	orders *repositories.OrderRepository
	cache  *services.ProductCache
}

func NewOrderController(orders *repositories.OrderRepository, cache *services.ProductCache) *OrderController {
	return &OrderController{orders: orders, cache: cache}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Validates and reserves stock for every item atomically; the order starts as pending
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Order lines and shipping address"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	ctx := c.Request.Context()

	order, err := ctrl.orders.CreateOrderTx(ctx, c.GetInt("user_id"), req)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusCreated, "order.created_success", order)
}

// GetMyOrders godoc
// @Summary List the authenticated user's orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.PaginatedResponse
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	page, limit := paginationParams(c)

	filter := repositories.OrderFilter{
		UserID: c.GetInt("user_id"),
		Page:   page,
		Limit:  limit,
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			i18n.RespondError(c, models.ErrValidation("order.invalid_status"))
			return
		}
		filter.Status = status
	}

	orders, total, err := ctrl.orders.FindAll(c.Request.Context(), filter)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.RespondPaginated(c, "order.list_retrieved", orders, models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetAllOrders godoc
// @Summary List all orders (admin)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Filter by user"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := paginationParams(c)

	filter := repositories.OrderFilter{Page: page, Limit: limit}
	if userID, err := strconv.Atoi(c.Query("user_id")); err == nil && userID > 0 {
		filter.UserID = userID
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			i18n.RespondError(c, models.ErrValidation("order.invalid_status"))
			return
		}
		filter.Status = status
	}

	orders, total, err := ctrl.orders.FindAll(c.Request.Context(), filter)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.RespondPaginated(c, "order.list_retrieved", orders, models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetOrder godoc
// @Summary Get one order
// @Description Regular users can only read their own orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ownerID := c.GetInt("user_id")
	if isAdmin(c) {
		ownerID = 0
	}

	order, err := ctrl.orders.FindByID(c.Request.Context(), id, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		i18n.RespondError(c, models.ErrNotFound("order.not_found"))
		return
	}
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "order.retrieved_success", order)
}

// UpdateOrderStatus godoc
// @Summary Update an order's status (admin)
// @Description Transitions follow the order state machine. Setting status to cancelled restores stock.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondError(c, models.ErrValidation("validation.invalid_request"))
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		i18n.RespondError(c, models.ErrValidation("order.invalid_status"))
		return
	}
	ctx := c.Request.Context()

	newStatus := models.OrderStatus(req.Status)

	// Cancelling goes through the transactional path so the reserved
	// stock comes back with the status change.
	if newStatus == models.StatusCancelled {
		order, err := ctrl.orders.CancelTx(ctx, id, 0)
		if err != nil {
			i18n.RespondError(c, err)
			return
		}
		ctrl.cache.Invalidate(ctx)
		i18n.Respond(c, http.StatusOK, "order.cancelled_success", order)
		return
	}

	order, err := ctrl.orders.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "order.updated_success", order)
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Only pending and confirmed orders can be cancelled; item quantities return to stock
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/cancel [patch]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ownerID := c.GetInt("user_id")
	if isAdmin(c) {
		ownerID = 0
	}
	ctx := c.Request.Context()

	order, err := ctrl.orders.CancelTx(ctx, id, ownerID)
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	ctrl.cache.Invalidate(ctx)
	i18n.Respond(c, http.StatusOK, "order.cancelled_success", order)
}

// GetStatistics godoc
// @Summary Order statistics (admin)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/orders/statistics [get]
func (ctrl *OrderController) GetStatistics(c *gin.Context) {
	stats, totals, err := ctrl.orders.Statistics(c.Request.Context())
	if err != nil {
		i18n.RespondError(c, err)
		return
	}

	i18n.Respond(c, http.StatusOK, "order.stats_retrieved", gin.H{
		"by_status": stats,
		"totals":    totals,
	})
}
