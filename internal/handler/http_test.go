package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/handler"
	"github.com/atlasgoods/fulfillment-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockFulfillment) {
	svc := mocks.NewMockFulfillment(t)
	h := handler.NewHTTPHandler(discardLogger(), svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func validOrder() entities.Order {
	return entities.Order{
		ID:        "4521",
		CreatedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		Status:    entities.OrderStatusPending,
		Customer:  entities.Customer{Name: "Amine Benali", City: "Casablanca"},
		Total:     decimal.NewFromInt(325),
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockFulfillment)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "4521",
			mockBehavior: func(svc *mocks.MockFulfillment) {
				svc.EXPECT().
					GetOrder(mock.Anything, "4521").
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"4521"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockFulfillment) {
				svc.EXPECT().
					GetOrder(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "4521",
			mockBehavior: func(svc *mocks.MockFulfillment) {
				svc.EXPECT().
					GetOrder(mock.Anything, "4521").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Transitions(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().Confirm(mock.Anything, "4521").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/4521/confirm", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			MarkShipped(mock.Anything, "4521").
			Return(entities.ErrInvalidTransition).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/4521/ship", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("cancel passes reason", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().Cancel(mock.Anything, "4521", "customer request").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/4521/cancel",
			strings.NewReader(`{"reason":"customer request"}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestHTTPHandler_CreateShipment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().CreateShipment(mock.Anything, "4521").Return(int64(777), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/4521/shipments", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"shipping_id":777`)
		assert.Contains(t, rr.Body.String(), `"tracking_code":"ATS000000777"`)
	})

	t.Run("unresolved geography", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			CreateShipment(mock.Anything, "4521").
			Return(int64(0), entities.ErrGeographyUnresolved).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/4521/shipments", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestHTTPHandler_ReconcileDeliveries(t *testing.T) {
	t.Run("reconciles manifest", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			ReconcileDeliveries(mock.Anything, []int64{101, 102}).
			Return(1, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/deliveries",
			strings.NewReader(`{"shipping_ids":[101,102]}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"delivered":1`)
	})

	t.Run("empty manifest rejected", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/orders/deliveries",
			strings.NewReader(`{"shipping_ids":[]}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_FixGeography(t *testing.T) {
	t.Run("sets city and sector", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			FixGeography(mock.Anything, "4521", "Casablanca", "Maarif").
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/orders/4521/geography",
			strings.NewReader(`{"city":"Casablanca","sector":"Maarif"}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing city rejected", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/orders/4521/geography",
			strings.NewReader(`{"sector":"Maarif"}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_SetDeliveryOptions(t *testing.T) {
	t.Run("sets flags", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			SetDeliveryOptions(mock.Anything, "4521", true, false).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/orders/4521/delivery-options",
			strings.NewReader(`{"fragile":true,"allow_opening":false}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("rejected once shipped", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().
			SetDeliveryOptions(mock.Anything, "4521", true, true).
			Return(entities.ErrShipmentExists).Once()

		req := httptest.NewRequest(http.MethodPatch, "/orders/4521/delivery-options",
			strings.NewReader(`{"fragile":true,"allow_opening":true}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHTTPHandler_PurchaseOrders(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, svc := newTestRouter(t)

		po := entities.PurchaseOrder{
			ID:         uuid.New(),
			SupplierID: "SUP-7",
			Status:     entities.PurchaseOrderStatusDraft,
			Total:      decimal.NewFromInt(125),
		}
		svc.EXPECT().
			CreatePurchaseOrder(mock.Anything, "SUP-7", mock.Anything).
			Return(po, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/purchase-orders",
			strings.NewReader(`{"supplier_id":"SUP-7","items":[{"product_id":"SKU-1","quantity":10,"buy_price":"12.50"}]}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"draft"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/purchase-orders/not-a-uuid/send", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("receive", func(t *testing.T) {
		r, svc := newTestRouter(t)

		id := uuid.New()
		svc.EXPECT().ReceivePurchaseOrder(mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/purchase-orders/"+id.String()+"/receive", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
