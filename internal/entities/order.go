package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusSalesOrder OrderStatus = "sales_order"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSalesOrder, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderStatusCanceled {
		return !s.IsTerminal()
	}
	switch s {
	case OrderStatusPending:
		return target == OrderStatusSalesOrder
	case OrderStatusSalesOrder:
		return target == OrderStatusProcessing
	case OrderStatusProcessing:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	}
	return false
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrGeographyUnresolved = errors.New("order geography is unresolved")
	ErrShipmentExists      = errors.New("order already has a shipment")
	ErrNoShipment          = errors.New("order has no shipment")
)

// Customer is the delivery/billing block denormalized onto the order.
// City and Sector hold the carrier-resolved values; RawCity on the order
// keeps what the source actually sent.
type Customer struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	City        string
	Sector      string
	CompanyName string
	TaxID       string
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// LogEntry is one line of the order's append-only audit log.
type LogEntry struct {
	ID        uuid.UUID
	OrderID   string
	CreatedAt time.Time
	Message   string
}

// EventMarker is the audit-log message recorded when an order is created from
// an external event. The idempotency guard searches for it verbatim.
func EventMarker(eventRef string) string {
	return "imported from event " + eventRef
}

const DeliveryMarker = "delivered (carrier confirmation)"

type Order struct {
	ID        string
	EventRef  string
	CreatedAt time.Time
	Status    OrderStatus

	Customer Customer
	Items    []OrderItem

	// Total comes from the source event and is authoritative; it is checked
	// against the item sum but never recomputed.
	Total decimal.Decimal

	ShippingID        *int64
	InvoiceDate       *time.Time
	InvoiceDownloaded bool

	Fragile      bool
	AllowOpening bool

	GeoResolved bool
	RawCity     string

	Log []LogEntry
}

// ItemsTotal sums the per-item subtotals.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// TransitionTo validates and applies a status change.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	return nil
}

// CanSetInvoiceDownloaded reports whether the invoice flag may be set; the
// order has to be confirmed first.
func (o *Order) CanSetInvoiceDownloaded() bool {
	switch o.Status {
	case OrderStatusSalesOrder, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}
