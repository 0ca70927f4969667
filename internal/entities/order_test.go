package entities_test

import (
	"testing"

	"github.com/atlasgoods/fulfillment-service/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    entities.OrderStatus
		to      entities.OrderStatus
		allowed bool
	}{
		{entities.OrderStatusPending, entities.OrderStatusSalesOrder, true},
		{entities.OrderStatusSalesOrder, entities.OrderStatusProcessing, true},
		{entities.OrderStatusProcessing, entities.OrderStatusShipped, true},
		{entities.OrderStatusShipped, entities.OrderStatusDelivered, true},

		{entities.OrderStatusPending, entities.OrderStatusProcessing, false},
		{entities.OrderStatusPending, entities.OrderStatusDelivered, false},
		{entities.OrderStatusProcessing, entities.OrderStatusDelivered, false},
		{entities.OrderStatusDelivered, entities.OrderStatusShipped, false},

		{entities.OrderStatusPending, entities.OrderStatusCanceled, true},
		{entities.OrderStatusSalesOrder, entities.OrderStatusCanceled, true},
		{entities.OrderStatusShipped, entities.OrderStatusCanceled, true},
		{entities.OrderStatusDelivered, entities.OrderStatusCanceled, false},
		{entities.OrderStatusCanceled, entities.OrderStatusCanceled, false},
		{entities.OrderStatusCanceled, entities.OrderStatusSalesOrder, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	order := entities.Order{ID: "1", Status: entities.OrderStatusPending}

	require.NoError(t, order.TransitionTo(entities.OrderStatusSalesOrder))
	assert.Equal(t, entities.OrderStatusSalesOrder, order.Status)

	err := order.TransitionTo(entities.OrderStatusDelivered)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	// Failed transition leaves the status alone.
	assert.Equal(t, entities.OrderStatusSalesOrder, order.Status)
}

func TestOrder_ItemsTotal(t *testing.T) {
	order := entities.Order{
		Items: []entities.OrderItem{
			{ProductID: "SKU-1", Quantity: 2, UnitPrice: decimal.RequireFromString("100.00")},
			{ProductID: "SKU-2", Quantity: 3, UnitPrice: decimal.RequireFromString("41.67")},
		},
	}
	assert.Equal(t, "325.01", order.ItemsTotal().StringFixed(2))
}

func TestOrder_GobRoundTrip(t *testing.T) {
	shippingID := int64(777)
	order := entities.Order{
		ID:         "4521",
		Status:     entities.OrderStatusProcessing,
		Total:      decimal.RequireFromString("325.00"),
		ShippingID: &shippingID,
		Customer:   entities.Customer{Name: "Amine Benali", City: "Casablanca"},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))

	assert.Equal(t, order.ID, decoded.ID)
	assert.Equal(t, order.Status, decoded.Status)
	assert.True(t, order.Total.Equal(decoded.Total))
	require.NotNil(t, decoded.ShippingID)
	assert.Equal(t, shippingID, *decoded.ShippingID)
}

func TestPurchaseOrder_Lifecycle(t *testing.T) {
	items := []entities.PurchaseOrderItem{
		{ProductID: "SKU-1", Quantity: 10, BuyPrice: decimal.RequireFromString("12.50")},
	}

	t.Run("draft to received", func(t *testing.T) {
		po, err := entities.NewPurchaseOrder("SUP-7", items)
		require.NoError(t, err)
		assert.Equal(t, entities.PurchaseOrderStatusDraft, po.Status)
		assert.Equal(t, "125.00", po.Total.StringFixed(2))

		require.NoError(t, po.Send())
		assert.NotNil(t, po.SentAt)

		require.NoError(t, po.Receive())
		assert.NotNil(t, po.ReceivedAt)
	})

	t.Run("receive before send", func(t *testing.T) {
		po, err := entities.NewPurchaseOrder("SUP-7", items)
		require.NoError(t, err)

		assert.ErrorIs(t, po.Receive(), entities.ErrInvalidTransition)
		assert.Equal(t, entities.PurchaseOrderStatusDraft, po.Status)
	})

	t.Run("cancel after received", func(t *testing.T) {
		po, err := entities.NewPurchaseOrder("SUP-7", items)
		require.NoError(t, err)
		require.NoError(t, po.Send())
		require.NoError(t, po.Receive())

		assert.ErrorIs(t, po.Cancel(), entities.ErrInvalidTransition)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := entities.NewPurchaseOrder("", items)
		assert.Error(t, err)

		_, err = entities.NewPurchaseOrder("SUP-7", nil)
		assert.Error(t, err)

		_, err = entities.NewPurchaseOrder("SUP-7", []entities.PurchaseOrderItem{
			{ProductID: "SKU-1", Quantity: 0, BuyPrice: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})
}
