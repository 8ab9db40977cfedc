package handlers

import (
	"context"
	"errors"
	"net/http"

	request "kanalsepet/internal/adapter/http/dto/request"
	response "kanalsepet/internal/adapter/http/dto/response"
	"kanalsepet/internal/adapter/persistence/repository"
	"kanalsepet/internal/usecase"
	"kanalsepet/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler exposes the order sheet and the add-to-cart flow over HTTP.
//
// Reads always reflect the in-memory aggregate; they never wait on storage.
type OrderHandler struct {
	orders usecase.IOrderUseCase
	flow   usecase.ICartFlowUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, flow usecase.ICartFlowUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, flow: flow}
}

// GetOrder returns the full sheet with its derived summary.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOrderSheet(h.orders.Sheet()))
}

// GetSummary returns only the derived counters and badge text.
func (h *OrderHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSummary(h.orders.Summary(), h.orders.BadgeText()))
}

// GetShareText renders the shareable plain-text order summary.
func (h *OrderHandler) GetShareText(c *gin.Context) {
	c.String(http.StatusOK, h.orders.ShareText())
}

// AddItem runs one add-to-cart interaction end to end through the flow's
// single-step submit, which pulls the live surface state through the bridge
// before committing.
func (h *OrderHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if payload.ResolveKey() == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	part := usecase.PartSelection{
		Key:      payload.ResolveKey(),
		Label:    payload.ResolveLabel(),
		URL:      payload.URL,
		Material: payload.Material,
	}
	item, err := h.flow.Submit(c.Request.Context(), part, payload.Quantity, payload.Note)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderItem(item))
}

// RemoveItem removes by id. An absent id is still a success: the end state is
// identical.
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	if err := h.orders.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearItems empties the cart. Project and zone labels survive.
func (h *OrderHandler) ClearItems(c *gin.Context) {
	if err := h.orders.Clear(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) SetProjectName(c *gin.Context) {
	h.setName(c, h.orders.SetProjectName)
}

func (h *OrderHandler) SetZoneName(c *gin.Context) {
	h.setName(c, h.orders.SetZoneName)
}

func (h *OrderHandler) setName(c *gin.Context, setter func(ctx context.Context, name string) error) {
	var payload request.NameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if err := setter(c.Request.Context(), payload.ResolveName()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSheet(h.orders.Sheet()))
}

// GetStorageUsage reports the advisory backend usage estimate.
func (h *OrderHandler) GetStorageUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.EstimateUsage(c.Request.Context()))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidPartKey),
		errors.Is(err, usecase.ErrInvalidMaterial),
		errors.Is(err, usecase.ErrNoPendingSelection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFlowBusy):
		return pkg.NewDomainErrorSimple("FLOW_BUSY", "An add-to-cart flow is already confirming", http.StatusConflict)
	case errors.Is(err, repository.ErrDuplicateItemID):
		return pkg.NewDomainErrorSimple("DUPLICATE_ITEM", "Item already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
