package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent     PurchaseOrderStatus = "sent"
	PurchaseOrderStatusReceived PurchaseOrderStatus = "received"
	PurchaseOrderStatusCanceled PurchaseOrderStatus = "canceled"
)

func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCanceled:
		return true
	}
	return false
}

func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusSent || target == PurchaseOrderStatusCanceled
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCanceled
	}
	// received and canceled are terminal
	return false
}

var ErrPurchaseOrderNotFound = errors.New("purchase order not found")

type PurchaseOrderItem struct {
	ProductID string
	Quantity  int
	BuyPrice  decimal.Decimal
}

func (i PurchaseOrderItem) Subtotal() decimal.Decimal {
	return i.BuyPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

type PurchaseOrder struct {
	ID         uuid.UUID
	SupplierID string
	Status     PurchaseOrderStatus
	Items      []PurchaseOrderItem
	Total      decimal.Decimal
	CreatedAt  time.Time
	SentAt     *time.Time
	ReceivedAt *time.Time
	CanceledAt *time.Time
}

// NewPurchaseOrder builds a draft purchase order; the total is computed from
// items here because, unlike sales orders, there is no external source of
// truth for it.
func NewPurchaseOrder(supplierID string, items []PurchaseOrderItem) (*PurchaseOrder, error) {
	if supplierID == "" {
		return nil, errors.New("supplier id is required")
	}
	if len(items) == 0 {
		return nil, errors.New("purchase order requires at least one item")
	}
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", it.Quantity, it.ProductID)
		}
		total = total.Add(it.Subtotal())
	}
	return &PurchaseOrder{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Status:     PurchaseOrderStatusDraft,
		Items:      items,
		Total:      total,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (p *PurchaseOrder) transition(target PurchaseOrderStatus, stamp **time.Time) error {
	if !p.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, target)
	}
	now := time.Now().UTC()
	p.Status = target
	*stamp = &now
	return nil
}

func (p *PurchaseOrder) Send() error {
	return p.transition(PurchaseOrderStatusSent, &p.SentAt)
}

func (p *PurchaseOrder) Receive() error {
	return p.transition(PurchaseOrderStatusReceived, &p.ReceivedAt)
}

func (p *PurchaseOrder) Cancel() error {
	return p.transition(PurchaseOrderStatusCanceled, &p.CanceledAt)
}
