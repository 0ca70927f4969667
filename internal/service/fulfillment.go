package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/carrier"
	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/pkg/trm"
	"github.com/atlasgoods/fulfillment-service/pkg/utils"

	"github.com/google/uuid"
)

type PurchaseOrderRepo interface {
	CreatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) error
	GetPurchaseOrderByID(ctx context.Context, id uuid.UUID) (entities.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) error
}

type ShipmentCreator interface {
	CreateShipment(ctx context.Context, req carrier.ShipmentRequest) (int64, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Label carries the locally derived display codes printed on a shipping label.
type Label struct {
	TrackingCode string
	SortCode     string
	Recipient    string
	City         string
	Sector       string
}

type fulfillmentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	poRepo    PurchaseOrderRepo
	carrier   ShipmentCreator
	cache     Cache
}

func NewFulfillmentService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, poRepo PurchaseOrderRepo, shipper ShipmentCreator, cache Cache) *fulfillmentService {
	return &fulfillmentService{
		logger:    logger.With(slog.String("service", "fulfillment")),
		txManager: txManager,
		repo:      repo,
		poRepo:    poRepo,
		carrier:   shipper,
		cache:     cache,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

func (s *fulfillmentService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// Corrupt cache entry; fall through to the store.
		s.cache.Delete(orderID)
	}

	var order entities.Order
	err := utils.Retry(readRetry, func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderID, data)
	}
	return order, nil
}

func (s *fulfillmentService) ListOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return s.repo.ListRecentOrders(ctx, count)
}

// Confirm promotes a pending order to a sales order.
func (s *fulfillmentService) Confirm(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, entities.OrderStatusSalesOrder, "order confirmed")
}

func (s *fulfillmentService) MarkShipped(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, entities.OrderStatusShipped, "order shipped")
}

func (s *fulfillmentService) Cancel(ctx context.Context, orderID, reason string) error {
	msg := "order canceled"
	if reason != "" {
		msg = "order canceled: " + reason
	}
	return s.transition(ctx, orderID, entities.OrderStatusCanceled, msg)
}

// MarkDelivered is idempotent: delivery confirmations arrive repeatedly from
// carrier manifests, and re-marking a delivered order is a no-op success.
func (s *fulfillmentService) MarkDelivered(ctx context.Context, orderID string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == entities.OrderStatusDelivered {
		return nil
	}
	return s.apply(ctx, order, entities.OrderStatusDelivered, entities.DeliveryMarker)
}

// ReconcileDeliveries marks orders matched against a carrier delivery
// manifest as delivered. Already delivered orders are skipped, which makes
// re-importing the same manifest a no-op; orders the manifest confirms but
// that never reached shipped locally are reported, not force-advanced.
// Returns the number of orders newly marked.
func (s *fulfillmentService) ReconcileDeliveries(ctx context.Context, shippingIDs []int64) (int, error) {
	orders, err := s.repo.OrdersByShippingIDs(ctx, shippingIDs)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, order := range orders {
		switch order.Status {
		case entities.OrderStatusDelivered:
			continue
		case entities.OrderStatusShipped:
			if err := s.apply(ctx, order, entities.OrderStatusDelivered, entities.DeliveryMarker); err != nil {
				return delivered, err
			}
			delivered++
		default:
			s.logger.WarnContext(ctx, "manifest references order in unexpected status",
				slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
		}
	}
	return delivered, nil
}

// CreateShipment registers the order with the carrier and moves it to
// processing. The carrier call happens outside the transaction; on failure
// the order keeps its state and stays eligible for retry.
func (s *fulfillmentService) CreateShipment(ctx context.Context, orderID string) (int64, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if order.ShippingID != nil {
		return *order.ShippingID, entities.ErrShipmentExists
	}
	if !order.Status.CanTransitionTo(entities.OrderStatusProcessing) {
		return 0, fmt.Errorf("%w: cannot create shipment in status %s", entities.ErrInvalidTransition, order.Status)
	}
	if !order.GeoResolved {
		return 0, fmt.Errorf("%w: order %s", entities.ErrGeographyUnresolved, order.ID)
	}

	shippingID, err := s.carrier.CreateShipment(ctx, carrier.ShipmentRequest{
		Reference:     order.ID,
		Recipient:     order.Customer.Name,
		Phone:         order.Customer.Phone,
		Address:       order.Customer.Address,
		City:          order.Customer.City,
		Sector:        order.Customer.Sector,
		DeclaredValue: order.Total.StringFixed(2),
		Fragile:       order.Fragile,
		AllowOpening:  order.AllowOpening,
	})
	if err != nil {
		return 0, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SetShippingID(ctx, order.ID, shippingID); err != nil {
			return err
		}
		if err := s.repo.UpdateStatus(ctx, order.ID, entities.OrderStatusProcessing); err != nil {
			return err
		}
		return s.repo.AppendLogs(ctx, []entities.LogEntry{{
			OrderID:   order.ID,
			CreatedAt: time.Now().UTC(),
			Message:   fmt.Sprintf("shipment %s created", carrier.TrackingCode(shippingID)),
		}})
	})
	if err != nil {
		return 0, fmt.Errorf("shipment %d created but order update failed: %w", shippingID, err)
	}

	s.cache.Delete(order.ID)
	s.logger.InfoContext(ctx, "shipment created",
		slog.String("order_id", order.ID), slog.Int64("shipping_id", shippingID))
	return shippingID, nil
}

func (s *fulfillmentService) MarkInvoiceDownloaded(ctx context.Context, orderID string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.InvoiceDownloaded {
		return nil
	}
	if !order.CanSetInvoiceDownloaded() {
		return fmt.Errorf("%w: cannot mark invoice downloaded in status %s", entities.ErrInvalidTransition, order.Status)
	}

	now := time.Now().UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SetInvoiceDownloaded(ctx, order.ID, now); err != nil {
			return err
		}
		return s.repo.AppendLogs(ctx, []entities.LogEntry{{
			OrderID:   order.ID,
			CreatedAt: now,
			Message:   "invoice downloaded",
		}})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	return nil
}

// FixGeography is the manual resolution path for orders the resolver could
// not place.
func (s *fulfillmentService) FixGeography(ctx context.Context, orderID, city, sector string) error {
	if city == "" {
		return fmt.Errorf("city is required")
	}
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateGeography(ctx, order.ID, city, sector); err != nil {
			return err
		}
		return s.repo.AppendLogs(ctx, []entities.LogEntry{{
			OrderID:   order.ID,
			CreatedAt: time.Now().UTC(),
			Message:   fmt.Sprintf("geography set manually to %s / %s", city, sector),
		}})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	return nil
}

// SetDeliveryOptions records the handling flags submitted to the carrier.
// Once a shipment exists the flags are already with the carrier and can no
// longer be changed here.
func (s *fulfillmentService) SetDeliveryOptions(ctx context.Context, orderID string, fragile, allowOpening bool) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ShippingID != nil {
		return fmt.Errorf("%w: delivery options are fixed after shipment creation", entities.ErrShipmentExists)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateDeliveryOptions(ctx, order.ID, fragile, allowOpening); err != nil {
			return err
		}
		return s.repo.AppendLogs(ctx, []entities.LogEntry{{
			OrderID:   order.ID,
			CreatedAt: time.Now().UTC(),
			Message:   fmt.Sprintf("delivery options set: fragile=%t allow_opening=%t", fragile, allowOpening),
		}})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	return nil
}

func (s *fulfillmentService) Label(ctx context.Context, orderID string) (Label, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return Label{}, err
	}
	if order.ShippingID == nil {
		return Label{}, fmt.Errorf("%w: order %s", entities.ErrNoShipment, order.ID)
	}

	return Label{
		TrackingCode: carrier.TrackingCode(*order.ShippingID),
		SortCode:     carrier.SortCode(order.Customer.City, order.ID),
		Recipient:    order.Customer.Name,
		City:         order.Customer.City,
		Sector:       order.Customer.Sector,
	}, nil
}

func (s *fulfillmentService) transition(ctx context.Context, orderID string, target entities.OrderStatus, msg string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.apply(ctx, order, target, msg)
}

func (s *fulfillmentService) apply(ctx context.Context, order entities.Order, target entities.OrderStatus, msg string) error {
	if err := order.TransitionTo(target); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateStatus(ctx, order.ID, target); err != nil {
			return err
		}
		return s.repo.AppendLogs(ctx, []entities.LogEntry{{
			OrderID:   order.ID,
			CreatedAt: time.Now().UTC(),
			Message:   msg,
		}})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", order.ID), slog.String("status", string(target)))
	return nil
}

func (s *fulfillmentService) CreatePurchaseOrder(ctx context.Context, supplierID string, items []entities.PurchaseOrderItem) (entities.PurchaseOrder, error) {
	po, err := entities.NewPurchaseOrder(supplierID, items)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.poRepo.CreatePurchaseOrder(ctx, *po)
	}); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return *po, nil
}

func (s *fulfillmentService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (entities.PurchaseOrder, error) {
	return s.poRepo.GetPurchaseOrderByID(ctx, id)
}

func (s *fulfillmentService) SendPurchaseOrder(ctx context.Context, id uuid.UUID) error {
	return s.updatePurchaseOrder(ctx, id, (*entities.PurchaseOrder).Send)
}

func (s *fulfillmentService) ReceivePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	return s.updatePurchaseOrder(ctx, id, (*entities.PurchaseOrder).Receive)
}

func (s *fulfillmentService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) error {
	return s.updatePurchaseOrder(ctx, id, (*entities.PurchaseOrder).Cancel)
}

func (s *fulfillmentService) updatePurchaseOrder(ctx context.Context, id uuid.UUID, op func(*entities.PurchaseOrder) error) error {
	po, err := s.poRepo.GetPurchaseOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if err := op(&po); err != nil {
		return err
	}
	return s.poRepo.UpdatePurchaseOrder(ctx, po)
}
