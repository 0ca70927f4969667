package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/carrier"
	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/service"
	svcmocks "github.com/atlasgoods/fulfillment-service/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentMocks struct {
	repo    *svcmocks.MockOrderRepo
	poRepo  *svcmocks.MockPurchaseOrderRepo
	shipper *svcmocks.MockShipmentCreator
	cache   *svcmocks.MockCache
}

type fulfillmentAPI interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	Confirm(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID, reason string) error
	MarkDelivered(ctx context.Context, orderID string) error
	ReconcileDeliveries(ctx context.Context, shippingIDs []int64) (int, error)
	CreateShipment(ctx context.Context, orderID string) (int64, error)
	MarkInvoiceDownloaded(ctx context.Context, orderID string) error
	SetDeliveryOptions(ctx context.Context, orderID string, fragile, allowOpening bool) error
	Label(ctx context.Context, orderID string) (service.Label, error)
	CreatePurchaseOrder(ctx context.Context, supplierID string, items []entities.PurchaseOrderItem) (entities.PurchaseOrder, error)
	SendPurchaseOrder(ctx context.Context, id uuid.UUID) error
	CancelPurchaseOrder(ctx context.Context, id uuid.UUID) error
}

func newFulfillmentService(t *testing.T) (fulfillmentAPI, fulfillmentMocks) {
	m := fulfillmentMocks{
		repo:    svcmocks.NewMockOrderRepo(t),
		poRepo:  svcmocks.NewMockPurchaseOrderRepo(t),
		shipper: svcmocks.NewMockShipmentCreator(t),
		cache:   svcmocks.NewMockCache(t),
	}
	svc := service.NewFulfillmentService(discardLogger(), passthroughTx(t), m.repo, m.poRepo, m.shipper, m.cache)
	return svc, m
}

func testOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:        "4521",
		EventRef:  "4521",
		CreatedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		Status:    status,
		Customer: entities.Customer{
			Name:    "Amine Benali",
			Phone:   "+212600000001",
			Address: "12 Rue des Orangers",
			City:    "Casablanca",
			Sector:  "Maarif",
		},
		Items: []entities.OrderItem{
			{ProductID: "SKU-1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
		Total:       decimal.NewFromInt(200),
		GeoResolved: true,
	}
}

func TestFulfillment_GetOrder(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		cached := testOrder(entities.OrderStatusPending)
		data, err := cached.Marshal()
		require.NoError(t, err)

		m.cache.EXPECT().Get("4521").Return(data, true).Once()

		order, err := svc.GetOrder(context.Background(), "4521")
		require.NoError(t, err)
		assert.Equal(t, cached.ID, order.ID)
		assert.Equal(t, cached.Status, order.Status)
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.cache.EXPECT().Get("4521").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusPending), nil).Once()
		m.cache.EXPECT().Set("4521", mock.Anything).Once()

		order, err := svc.GetOrder(context.Background(), "4521")
		require.NoError(t, err)
		assert.Equal(t, "4521", order.ID)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.cache.EXPECT().Get("missing").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.GetOrder(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestFulfillment_Transitions(t *testing.T) {
	t.Run("confirm pending order", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusPending), nil).Once()
		m.repo.EXPECT().UpdateStatus(mock.Anything, "4521", entities.OrderStatusSalesOrder).Return(nil).Once()
		m.repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		require.NoError(t, svc.Confirm(context.Background(), "4521"))
	})

	t.Run("confirm delivered order fails", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusDelivered), nil).Once()

		err := svc.Confirm(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("cancel records reason", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusSalesOrder), nil).Once()
		m.repo.EXPECT().UpdateStatus(mock.Anything, "4521", entities.OrderStatusCanceled).Return(nil).Once()
		m.repo.EXPECT().
			AppendLogs(mock.Anything, mock.MatchedBy(func(entries []entities.LogEntry) bool {
				return len(entries) == 1 && entries[0].Message == "order canceled: customer request"
			})).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		require.NoError(t, svc.Cancel(context.Background(), "4521", "customer request"))
	})

	t.Run("deliver twice is a no-op", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusDelivered), nil).Once()

		require.NoError(t, svc.MarkDelivered(context.Background(), "4521"))
	})
}

func TestFulfillment_ReconcileDeliveries(t *testing.T) {
	svc, m := newFulfillmentService(t)

	shipped := testOrder(entities.OrderStatusShipped)
	shipped.ID = "s1"
	alreadyDelivered := testOrder(entities.OrderStatusDelivered)
	alreadyDelivered.ID = "d1"
	pending := testOrder(entities.OrderStatusPending)
	pending.ID = "p1"

	ids := []int64{101, 102, 103}
	m.repo.EXPECT().OrdersByShippingIDs(mock.Anything, ids).
		Return([]entities.Order{shipped, alreadyDelivered, pending}, nil).Once()

	m.repo.EXPECT().UpdateStatus(mock.Anything, "s1", entities.OrderStatusDelivered).Return(nil).Once()
	m.repo.EXPECT().
		AppendLogs(mock.Anything, mock.MatchedBy(func(entries []entities.LogEntry) bool {
			return len(entries) == 1 && entries[0].Message == entities.DeliveryMarker
		})).Return(nil).Once()
	m.cache.EXPECT().Delete("s1").Once()

	delivered, err := svc.ReconcileDeliveries(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}

func TestFulfillment_CreateShipment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusSalesOrder)
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		m.shipper.EXPECT().
			CreateShipment(mock.Anything, mock.MatchedBy(func(req carrier.ShipmentRequest) bool {
				return req.Reference == "4521" && req.City == "Casablanca" && req.DeclaredValue == "200.00"
			})).Return(int64(777), nil).Once()

		m.repo.EXPECT().SetShippingID(mock.Anything, "4521", int64(777)).Return(nil).Once()
		m.repo.EXPECT().UpdateStatus(mock.Anything, "4521", entities.OrderStatusProcessing).Return(nil).Once()
		m.repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		shippingID, err := svc.CreateShipment(context.Background(), "4521")
		require.NoError(t, err)
		assert.Equal(t, int64(777), shippingID)
	})

	t.Run("existing shipment", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusProcessing)
		existing := int64(555)
		order.ShippingID = &existing
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		shippingID, err := svc.CreateShipment(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrShipmentExists)
		assert.Equal(t, existing, shippingID)
	})

	t.Run("pending order", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusPending), nil).Once()

		_, err := svc.CreateShipment(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("unresolved geography", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusSalesOrder)
		order.GeoResolved = false
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		_, err := svc.CreateShipment(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrGeographyUnresolved)
	})

	t.Run("handling flags reach the carrier", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusSalesOrder)
		order.Fragile = true
		order.AllowOpening = true
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		m.shipper.EXPECT().
			CreateShipment(mock.Anything, mock.MatchedBy(func(req carrier.ShipmentRequest) bool {
				return req.Fragile && req.AllowOpening
			})).Return(int64(778), nil).Once()

		m.repo.EXPECT().SetShippingID(mock.Anything, "4521", int64(778)).Return(nil).Once()
		m.repo.EXPECT().UpdateStatus(mock.Anything, "4521", entities.OrderStatusProcessing).Return(nil).Once()
		m.repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		_, err := svc.CreateShipment(context.Background(), "4521")
		require.NoError(t, err)
	})

	t.Run("carrier failure leaves order untouched", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusSalesOrder), nil).Once()
		m.shipper.EXPECT().CreateShipment(mock.Anything, mock.Anything).Return(int64(0), carrier.ErrUnavailable).Once()

		_, err := svc.CreateShipment(context.Background(), "4521")
		assert.ErrorIs(t, err, carrier.ErrUnavailable)
	})
}

func TestFulfillment_MarkInvoiceDownloaded(t *testing.T) {
	t.Run("pending order is rejected", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusPending), nil).Once()

		err := svc.MarkInvoiceDownloaded(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("idempotent", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusSalesOrder)
		order.InvoiceDownloaded = true
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		require.NoError(t, svc.MarkInvoiceDownloaded(context.Background(), "4521"))
	})

	t.Run("confirmed order", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusSalesOrder), nil).Once()
		m.repo.EXPECT().SetInvoiceDownloaded(mock.Anything, "4521", mock.Anything).Return(nil).Once()
		m.repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		require.NoError(t, svc.MarkInvoiceDownloaded(context.Background(), "4521"))
	})
}

func TestFulfillment_SetDeliveryOptions(t *testing.T) {
	t.Run("sets flags and invalidates cache", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusSalesOrder), nil).Once()
		m.repo.EXPECT().UpdateDeliveryOptions(mock.Anything, "4521", true, false).Return(nil).Once()
		m.repo.EXPECT().
			AppendLogs(mock.Anything, mock.MatchedBy(func(entries []entities.LogEntry) bool {
				return len(entries) == 1 && entries[0].Message == "delivery options set: fragile=true allow_opening=false"
			})).Return(nil).Once()
		m.cache.EXPECT().Delete("4521").Once()

		require.NoError(t, svc.SetDeliveryOptions(context.Background(), "4521", true, false))
	})

	t.Run("rejected once a shipment exists", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusProcessing)
		shippingID := int64(555)
		order.ShippingID = &shippingID
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()

		err := svc.SetDeliveryOptions(context.Background(), "4521", true, true)
		assert.ErrorIs(t, err, entities.ErrShipmentExists)
	})
}

func TestFulfillment_Label(t *testing.T) {
	t.Run("no shipment", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.cache.EXPECT().Get("4521").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(testOrder(entities.OrderStatusSalesOrder), nil).Once()
		m.cache.EXPECT().Set("4521", mock.Anything).Once()

		_, err := svc.Label(context.Background(), "4521")
		assert.ErrorIs(t, err, entities.ErrNoShipment)
	})

	t.Run("codes derived from shipment and city", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		order := testOrder(entities.OrderStatusShipped)
		shippingID := int64(4521)
		order.ShippingID = &shippingID
		m.cache.EXPECT().Get("4521").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "4521").Return(order, nil).Once()
		m.cache.EXPECT().Set("4521", mock.Anything).Once()

		label, err := svc.Label(context.Background(), "4521")
		require.NoError(t, err)
		assert.Equal(t, "ATS000004521", label.TrackingCode)
		assert.Equal(t, carrier.SortCode("Casablanca", "4521"), label.SortCode)
		assert.Equal(t, "Amine Benali", label.Recipient)
	})
}

func TestFulfillment_PurchaseOrders(t *testing.T) {
	items := []entities.PurchaseOrderItem{
		{ProductID: "SKU-1", Quantity: 10, BuyPrice: decimal.NewFromFloat(12.50)},
		{ProductID: "SKU-2", Quantity: 4, BuyPrice: decimal.NewFromInt(30)},
	}

	t.Run("create computes total", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		m.poRepo.EXPECT().CreatePurchaseOrder(mock.Anything, mock.Anything).Return(nil).Once()

		po, err := svc.CreatePurchaseOrder(context.Background(), "SUP-7", items)
		require.NoError(t, err)
		assert.Equal(t, entities.PurchaseOrderStatusDraft, po.Status)
		assert.Equal(t, "245.00", po.Total.StringFixed(2))
	})

	t.Run("send draft", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		po, err := entities.NewPurchaseOrder("SUP-7", items)
		require.NoError(t, err)

		m.poRepo.EXPECT().GetPurchaseOrderByID(mock.Anything, po.ID).Return(*po, nil).Once()
		m.poRepo.EXPECT().
			UpdatePurchaseOrder(mock.Anything, mock.MatchedBy(func(updated entities.PurchaseOrder) bool {
				return updated.Status == entities.PurchaseOrderStatusSent && updated.SentAt != nil
			})).Return(nil).Once()

		require.NoError(t, svc.SendPurchaseOrder(context.Background(), po.ID))
	})

	t.Run("cancel received is rejected", func(t *testing.T) {
		svc, m := newFulfillmentService(t)

		po, err := entities.NewPurchaseOrder("SUP-7", items)
		require.NoError(t, err)
		po.Status = entities.PurchaseOrderStatusReceived

		m.poRepo.EXPECT().GetPurchaseOrderByID(mock.Anything, po.ID).Return(*po, nil).Once()

		err = svc.CancelPurchaseOrder(context.Background(), po.ID)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}
