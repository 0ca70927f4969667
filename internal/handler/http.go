package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atlasgoods/fulfillment-service/internal/carrier"
	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/service"
	"github.com/atlasgoods/fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Fulfillment interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, count int) ([]entities.Order, error)
	Confirm(ctx context.Context, orderID string) error
	CreateShipment(ctx context.Context, orderID string) (int64, error)
	MarkShipped(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID, reason string) error
	ReconcileDeliveries(ctx context.Context, shippingIDs []int64) (int, error)
	MarkInvoiceDownloaded(ctx context.Context, orderID string) error
	FixGeography(ctx context.Context, orderID, city, sector string) error
	SetDeliveryOptions(ctx context.Context, orderID string, fragile, allowOpening bool) error
	Label(ctx context.Context, orderID string) (service.Label, error)

	CreatePurchaseOrder(ctx context.Context, supplierID string, items []entities.PurchaseOrderItem) (entities.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uuid.UUID) (entities.PurchaseOrder, error)
	SendPurchaseOrder(ctx context.Context, id uuid.UUID) error
	ReceivePurchaseOrder(ctx context.Context, id uuid.UUID) error
	CancelPurchaseOrder(ctx context.Context, id uuid.UUID) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Fulfillment
}

func NewHTTPHandler(logger *slog.Logger, svc Fulfillment) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/deliveries", h.ReconcileDeliveries)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrderByID)
			r.Get("/label", h.GetLabel)
			r.Post("/confirm", h.ConfirmOrder)
			r.Post("/shipments", h.CreateShipment)
			r.Post("/ship", h.ShipOrder)
			r.Post("/deliver", h.DeliverOrder)
			r.Post("/cancel", h.CancelOrder)
			r.Post("/invoice-downloaded", h.MarkInvoiceDownloaded)
			r.Patch("/geography", h.FixGeography)
			r.Patch("/delivery-options", h.SetDeliveryOptions)
		})
	})

	r.Route("/purchase-orders", func(r chi.Router) {
		r.Post("/", h.CreatePurchaseOrder)
		r.Route("/{purchase_order_id}", func(r chi.Router) {
			r.Get("/", h.GetPurchaseOrderByID)
			r.Post("/send", h.SendPurchaseOrder)
			r.Post("/receive", h.ReceivePurchaseOrder)
			r.Post("/cancel", h.CancelPurchaseOrder)
		})
	})
}

// GetOrderByID returns an order.
// @Summary      Get an order
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

const defaultListCount = 20

// ListOrders returns the most recently created orders.
// @Summary      List recent orders
// @Tags         orders
// @Param        count   query     int  false  "Maximum number of orders" default(20)
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count := defaultListCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.WriteError(w, "invalid count", http.StatusBadRequest)
			return
		}
		count = parsed
	}

	orders, err := h.svc.ListOrders(ctx, count)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// ConfirmOrder promotes a pending order to a sales order.
// @Summary      Confirm an order
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /orders/{order_id}/confirm [post]
func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.Confirm)
}

// CreateShipment registers the order with the carrier.
// @Summary      Create a shipment
// @Description  Registers the order with the carrier and moves it to processing.
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      201  {object}  ShipmentResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Shipment already exists or invalid status"
// @Failure      422  {object}  utils.ErrorResponse "Geography unresolved or carrier rejected the shipment"
// @Failure      502  {object}  utils.ErrorResponse "Carrier unavailable"
// @Router       /orders/{order_id}/shipments [post]
func (h *HTTPHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	shippingID, err := h.svc.CreateShipment(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ShipmentResponse{
		ShippingID:   shippingID,
		TrackingCode: carrier.TrackingCode(shippingID),
	}, http.StatusCreated)
}

// ShipOrder marks a processing order as shipped.
// @Summary      Mark an order shipped
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /orders/{order_id}/ship [post]
func (h *HTTPHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.MarkShipped)
}

// DeliverOrder marks a shipped order as delivered.
// @Summary      Mark an order delivered
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /orders/{order_id}/deliver [post]
func (h *HTTPHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.MarkDelivered)
}

// CancelOrder cancels a non-terminal order.
// @Summary      Cancel an order
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Param        request    body      CancelRequest  false  "Cancellation reason"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req CancelRequest
	// The body is optional; a missing reason is fine.
	utils.DecodeBody(r, &req)

	if err := h.svc.Cancel(ctx, orderID, req.Reason); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReconcileDeliveries imports a carrier delivery manifest.
// @Summary      Reconcile a delivery manifest
// @Description  Marks shipped orders matching the manifest's shipping ids as delivered. Re-importing the same manifest is a no-op.
// @Tags         orders
// @Param        request    body      DeliveriesRequest  true  "Shipping ids from the carrier manifest"
// @Success      200  {object}  DeliveriesResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/deliveries [post]
func (h *HTTPHandler) ReconcileDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeliveriesRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	delivered, err := h.svc.ReconcileDeliveries(ctx, req.ShippingIDs)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, DeliveriesResponse{Delivered: delivered}, http.StatusOK)
}

// MarkInvoiceDownloaded records that the order's invoice was downloaded.
// @Summary      Mark invoice downloaded
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order not confirmed yet"
// @Router       /orders/{order_id}/invoice-downloaded [post]
func (h *HTTPHandler) MarkInvoiceDownloaded(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.MarkInvoiceDownloaded)
}

// FixGeography sets the order's city and sector manually.
// @Summary      Fix order geography
// @Description  Manual resolution path for orders the city resolver could not place.
// @Tags         orders
// @Param        order_id   path      string            true  "Order id"
// @Param        request    body      GeographyRequest  true  "City and sector"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id}/geography [patch]
func (h *HTTPHandler) FixGeography(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req GeographyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.FixGeography(ctx, orderID, req.City, req.Sector); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDeliveryOptions sets the order's carrier handling flags.
// @Summary      Set delivery options
// @Description  Records the fragile and allow-opening flags submitted to the carrier. Rejected once a shipment exists.
// @Tags         orders
// @Param        order_id   path      string                  true  "Order id"
// @Param        request    body      DeliveryOptionsRequest  true  "Handling flags"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Invalid request body"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Shipment already exists"
// @Router       /orders/{order_id}/delivery-options [patch]
func (h *HTTPHandler) SetDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req DeliveryOptionsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetDeliveryOptions(ctx, orderID, req.Fragile, req.AllowOpening); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetLabel returns the shipping label codes for an order.
// @Summary      Get shipping label codes
// @Tags         orders
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {object}  LabelResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order has no shipment"
// @Router       /orders/{order_id}/label [get]
func (h *HTTPHandler) GetLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	label, err := h.svc.Label(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, LabelResponse{
		TrackingCode: label.TrackingCode,
		SortCode:     label.SortCode,
		Recipient:    label.Recipient,
		City:         label.City,
		Sector:       label.Sector,
	}, http.StatusOK)
}

// CreatePurchaseOrder creates a draft purchase order.
// @Summary      Create a purchase order
// @Tags         purchase-orders
// @Param        request    body      CreatePurchaseOrderRequest  true  "Supplier and items"
// @Success      201  {object}  PurchaseOrder
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /purchase-orders [post]
func (h *HTTPHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePurchaseOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items, err := PurchaseOrderItemsFromJSON(req.Items)
	if err != nil {
		utils.WriteError(w, "invalid item price", http.StatusBadRequest)
		return
	}

	po, err := h.svc.CreatePurchaseOrder(ctx, req.SupplierID, items)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, PurchaseOrderEntityToJSON(po), http.StatusCreated)
}

// GetPurchaseOrderByID returns a purchase order.
// @Summary      Get a purchase order
// @Tags         purchase-orders
// @Param        purchase_order_id   path      string  true  "Purchase order id"
// @Success      200  {object}  PurchaseOrder
// @Failure      404  {object}  utils.ErrorResponse "Purchase order not found"
// @Router       /purchase-orders/{purchase_order_id} [get]
func (h *HTTPHandler) GetPurchaseOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "purchase_order_id"))
	if err != nil {
		utils.WriteError(w, "invalid purchase order id", http.StatusBadRequest)
		return
	}

	po, err := h.svc.GetPurchaseOrder(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, PurchaseOrderEntityToJSON(po), http.StatusOK)
}

// SendPurchaseOrder marks a draft purchase order as sent to the supplier.
// @Summary      Send a purchase order
// @Tags         purchase-orders
// @Param        purchase_order_id   path      string  true  "Purchase order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Purchase order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /purchase-orders/{purchase_order_id}/send [post]
func (h *HTTPHandler) SendPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.applyPurchaseTransition(w, r, h.svc.SendPurchaseOrder)
}

// ReceivePurchaseOrder marks a sent purchase order as received.
// @Summary      Receive a purchase order
// @Tags         purchase-orders
// @Param        purchase_order_id   path      string  true  "Purchase order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Purchase order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /purchase-orders/{purchase_order_id}/receive [post]
func (h *HTTPHandler) ReceivePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.applyPurchaseTransition(w, r, h.svc.ReceivePurchaseOrder)
}

// CancelPurchaseOrder cancels a draft or sent purchase order.
// @Summary      Cancel a purchase order
// @Tags         purchase-orders
// @Param        purchase_order_id   path      string  true  "Purchase order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Purchase order not found"
// @Failure      409  {object}  utils.ErrorResponse "Invalid status transition"
// @Router       /purchase-orders/{purchase_order_id}/cancel [post]
func (h *HTTPHandler) CancelPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.applyPurchaseTransition(w, r, h.svc.CancelPurchaseOrder)
}

func (h *HTTPHandler) applyTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, orderID string) error) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := op(ctx, orderID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) applyPurchaseTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "purchase_order_id"))
	if err != nil {
		utils.WriteError(w, "invalid purchase order id", http.StatusBadRequest)
		return
	}
	if err := op(ctx, id); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPurchaseOrderNotFound):
		utils.WriteError(w, "purchase order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrShipmentExists),
		errors.Is(err, entities.ErrNoShipment):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrGeographyUnresolved),
		errors.Is(err, carrier.ErrRejected):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, carrier.ErrUnavailable):
		utils.WriteError(w, "carrier unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
