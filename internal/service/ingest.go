package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/geo"
	"github.com/atlasgoods/fulfillment-service/pkg/trm"

	"github.com/shopspring/decimal"
)

// OrderEvent is the canonical parsed form of an external order notification,
// shared by the webhook and the message-bus ingestion paths.
type OrderEvent struct {
	Ref       string
	CreatedAt time.Time
	Total     string

	Billing  *EventAddress
	Shipping *EventAddress
	Items    []EventItem
}

type EventAddress struct {
	FirstName string
	LastName  string
	Company   string
	TaxID     string
	Address1  string
	Address2  string
	City      string
	Phone     string
	Email     string
}

type EventItem struct {
	ProductID string
	Quantity  int
	Price     string
}

type IngestResult string

const (
	IngestCreated   IngestResult = "created"
	IngestDuplicate IngestResult = "duplicate"
	IngestIgnored   IngestResult = "ignored"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (created bool, err error)
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	AppendLogs(ctx context.Context, entries []entities.LogEntry) error

	HasEventMarker(ctx context.Context, marker string) (bool, error)
	ExistsByDateAndTotal(ctx context.Context, createdAt time.Time, total decimal.Decimal) (bool, error)

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListRecentOrders(ctx context.Context, count int) ([]entities.Order, error)
	OrdersByShippingIDs(ctx context.Context, shippingIDs []int64) ([]entities.Order, error)

	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	SetShippingID(ctx context.Context, orderID string, shippingID int64) error
	SetInvoiceDownloaded(ctx context.Context, orderID string, at time.Time) error
	UpdateGeography(ctx context.Context, orderID, city, sector string) error
	UpdateDeliveryOptions(ctx context.Context, orderID string, fragile, allowOpening bool) error
}

type CityResolver interface {
	Resolve(city, address string) geo.Resolution
}

type ingestService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	resolver  CityResolver
}

func NewIngestService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, resolver CityResolver) *ingestService {
	return &ingestService{
		logger:    logger.With(slog.String("service", "ingest")),
		txManager: txManager,
		repo:      repo,
		resolver:  resolver,
	}
}

// Ingest turns an external order event into a persisted order exactly once.
// Non-order pings and malformed events are acknowledged without creating
// anything, duplicates are reported as success.
func (s *ingestService) Ingest(ctx context.Context, ev OrderEvent) (IngestResult, error) {
	// Events without an id or billing block are webhook pings, not orders.
	if ev.Ref == "" || ev.Billing == nil {
		s.logger.InfoContext(ctx, "ignoring non-order event", slog.String("ref", ev.Ref))
		return IngestIgnored, nil
	}

	total, err := decimal.NewFromString(ev.Total)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring event with unparseable total",
			slog.String("ref", ev.Ref), slog.String("total", ev.Total))
		return IngestIgnored, nil
	}
	total = total.Round(2)

	items, err := normalizeItems(ev.Items)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring event with malformed items",
			slog.String("ref", ev.Ref), slog.Any("error", err))
		return IngestIgnored, nil
	}

	dup, err := s.isDuplicate(ctx, ev, total)
	if err != nil {
		return "", err
	}
	if dup {
		s.logger.InfoContext(ctx, "duplicate event", slog.String("ref", ev.Ref))
		return IngestDuplicate, nil
	}

	order := s.normalize(ev, total, items)

	res := IngestCreated
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repo.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if !created {
			// Lost the race against a concurrent delivery of the same event;
			// the unique index already holds the winner's row.
			res = IngestDuplicate
			return nil
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		if err := s.repo.AppendLogs(ctx, order.Log); err != nil {
			return fmt.Errorf("failed to append logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if res == IngestCreated {
		s.logger.InfoContext(ctx, "order created",
			slog.String("order_id", order.ID),
			slog.String("total", order.Total.StringFixed(2)),
			slog.Bool("geo_resolved", order.GeoResolved))
	}
	return res, nil
}

// isDuplicate checks the audit-log event marker first, then falls back to the
// (creation timestamp, total) heuristic for orders created through another
// path. The fallback has a known false-positive class: two distinct orders
// sharing both timestamp and total are merged.
func (s *ingestService) isDuplicate(ctx context.Context, ev OrderEvent, total decimal.Decimal) (bool, error) {
	marked, err := s.repo.HasEventMarker(ctx, entities.EventMarker(ev.Ref))
	if err != nil {
		return false, fmt.Errorf("failed to check event marker: %w", err)
	}
	if marked {
		return true, nil
	}

	exists, err := s.repo.ExistsByDateAndTotal(ctx, ev.CreatedAt, total)
	if err != nil {
		return false, fmt.Errorf("failed to check date/total duplicate: %w", err)
	}
	return exists, nil
}

func (s *ingestService) normalize(ev OrderEvent, total decimal.Decimal, items []entities.OrderItem) entities.Order {
	// Delivery fields come from the shipping block when one is present,
	// contact and company fields always from billing.
	delivery := ev.Billing
	if ev.Shipping != nil && (ev.Shipping.Address1 != "" || ev.Shipping.City != "") {
		delivery = ev.Shipping
	}

	rawCity := strings.TrimSpace(delivery.City)
	res := s.resolver.Resolve(rawCity, delivery.Address1+" "+delivery.Address2)

	order := entities.Order{
		ID:        ev.Ref,
		EventRef:  ev.Ref,
		CreatedAt: ev.CreatedAt,
		Status:    entities.OrderStatusPending,
		Customer: entities.Customer{
			Name:        flattenName(delivery.FirstName, delivery.LastName),
			Phone:       ev.Billing.Phone,
			Email:       ev.Billing.Email,
			Address:     strings.TrimSpace(delivery.Address1 + " " + delivery.Address2),
			City:        res.City,
			Sector:      res.Sector,
			CompanyName: ev.Billing.Company,
			TaxID:       ev.Billing.TaxID,
		},
		Items:       items,
		Total:       total,
		GeoResolved: res.Resolved,
		RawCity:     rawCity,
	}

	now := time.Now().UTC()
	order.Log = append(order.Log, entities.LogEntry{
		OrderID:   order.ID,
		CreatedAt: now,
		Message:   entities.EventMarker(ev.Ref),
	})

	// The source total is authoritative; divergence from the item sum is
	// flagged, never corrected.
	sum := order.ItemsTotal()
	if total.Sub(sum).Abs().GreaterThan(totalTolerance(len(items))) {
		s.logger.Warn("order total differs from item sum",
			slog.String("order_id", order.ID),
			slog.String("total", total.StringFixed(2)),
			slog.String("item_sum", sum.StringFixed(2)))
		order.Log = append(order.Log, entities.LogEntry{
			OrderID:   order.ID,
			CreatedAt: now,
			Message:   fmt.Sprintf("total %s differs from item sum %s", total.StringFixed(2), sum.StringFixed(2)),
		})
	}

	if !order.GeoResolved {
		order.Log = append(order.Log, entities.LogEntry{
			OrderID:   order.ID,
			CreatedAt: now,
			Message:   fmt.Sprintf("city %q needs manual geography resolution", rawCity),
		})
	}

	return order
}

func normalizeItems(items []EventItem) ([]entities.OrderItem, error) {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", it.Quantity, it.ProductID)
		}
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %s", it.Price, it.ProductID)
		}
		out = append(out, entities.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price.Round(2),
		})
	}
	return out, nil
}

// totalTolerance allows one cent of rounding drift per line item.
func totalTolerance(items int) decimal.Decimal {
	if items < 1 {
		items = 1
	}
	return decimal.New(int64(items), -2)
}

func flattenName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
