package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cortado/internal/dto"
	apperrors "cortado/internal/errors"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, orderID uint, status string) error
}

type TrackOrderUseCase interface {
	GetOrderView(ctx context.Context, orderID uint) (*dto.OrderView, error)
}

type ListOrdersUseCase interface {
	ListOrders(ctx context.Context, status string) (*dto.ListOrdersResponse, error)
}

type DashboardUseCase interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type OrderController struct {
	placeOrder   PlaceOrderUseCase
	updateStatus UpdateStatusUseCase
	trackOrder   TrackOrderUseCase
	listOrders   ListOrdersUseCase
	dashboard    DashboardUseCase
	logger       *zap.Logger
}

func NewOrderController(
	placeOrder PlaceOrderUseCase,
	updateStatus UpdateStatusUseCase,
	trackOrder TrackOrderUseCase,
	listOrders ListOrdersUseCase,
	dashboard DashboardUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		placeOrder:   placeOrder,
		updateStatus: updateStatus,
		trackOrder:   trackOrder,
		listOrders:   listOrders,
		dashboard:    dashboard,
		logger:       logger,
	}
}

func (c *OrderController) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.placeOrder.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		TraceID:     traceID,
		OrderID:     result.OrderID,
		Status:      "pending",
		TotalAmount: result.TotalAmount,
		Timestamp:   time.Now().UTC(),
	})
}

func (c *OrderController) HandleTrackOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	view, err := c.trackOrder.GetOrderView(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, view)
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.updateStatus.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"orderId": orderID,
		"status":  req.Status,
	})
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := c.listOrders.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := c.dashboard.Dashboard(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	if pe, ok := apperrors.IsPersistenceError(err); ok {
		logger.Error("persistence failure", zap.Error(pe))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "PERSISTENCE_ERROR",
			"message": pe.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
