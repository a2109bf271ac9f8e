package menu

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "cortado/internal/errors"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCustomerMenu lists the orderable catalog: available items only,
// optionally narrowed to one category.
func (c *Controller) HandleCustomerMenu(w http.ResponseWriter, r *http.Request) {
	req := ListMenuRequest{
		Category:      r.URL.Query().Get("category"),
		AvailableOnly: true,
	}
	if req.Category == "all" {
		req.Category = ""
	}

	resp, err := c.useCase.ListMenu(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleAdminMenu(w http.ResponseWriter, r *http.Request) {
	req := ListMenuRequest{
		Category:      r.URL.Query().Get("category"),
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}
	if req.Category == "all" {
		req.Category = ""
	}

	resp, err := c.useCase.ListMenu(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseItemID(w, r)
	if !ok {
		return
	}

	item, err := c.useCase.GetItem(r.Context(), id)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, item)
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateItemFields(req.Name, req.Category, req.Price.IsNegative()); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	item, err := c.useCase.AddItem(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, item)
}

func (c *Controller) HandleEditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseItemID(w, r)
	if !ok {
		return
	}

	var req EditMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateItemFields(req.Name, req.Category, req.Price.IsNegative()); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	item, err := c.useCase.EditItem(r.Context(), id, req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, item)
}

func (c *Controller) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseItemID(w, r)
	if !ok {
		return
	}

	if err := c.useCase.RemoveItem(r.Context(), id); err != nil {
		c.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) parseItemID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "itemId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.writeValidationError(w, "invalid itemId", apperrors.ValidationDetail{
			Field:   "itemId",
			Message: "itemId must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *Controller) validateItemFields(name, category string, negativePrice bool) error {
	var details []apperrors.ValidationDetail

	if name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if category == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is required",
		})
	}

	if negativePrice {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	c.logger.Error("menu operation failed", zap.Error(err))
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

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
