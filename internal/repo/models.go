package repo

import (
	"database/sql"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID           string          `db:"order_id"`
	EventRef          sql.NullString  `db:"event_ref"`
	CreatedAt         time.Time       `db:"created_at"`
	Status            string          `db:"status"`
	Name              string          `db:"name"`
	Phone             sql.NullString  `db:"phone"`
	Email             sql.NullString  `db:"email"`
	Address           sql.NullString  `db:"address"`
	City              sql.NullString  `db:"city"`
	Sector            sql.NullString  `db:"sector"`
	RawCity           sql.NullString  `db:"raw_city"`
	GeoResolved       bool            `db:"geo_resolved"`
	CompanyName       sql.NullString  `db:"company_name"`
	TaxID             sql.NullString  `db:"tax_id"`
	Total             decimal.Decimal `db:"total"`
	ShippingID        sql.NullInt64   `db:"shipping_id"`
	InvoiceDate       sql.NullTime    `db:"invoice_date"`
	InvoiceDownloaded bool            `db:"invoice_downloaded"`
	Fragile           bool            `db:"fragile"`
	AllowOpening      bool            `db:"allow_opening"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type LogEntry struct {
	LogID     uuid.UUID `db:"log_id"`
	OrderID   string    `db:"order_id"`
	CreatedAt time.Time `db:"created_at"`
	Message   string    `db:"message"`
}

type PurchaseOrder struct {
	POID       uuid.UUID       `db:"po_id"`
	SupplierID string          `db:"supplier_id"`
	Status     string          `db:"status"`
	Total      decimal.Decimal `db:"total"`
	CreatedAt  time.Time       `db:"created_at"`
	SentAt     sql.NullTime    `db:"sent_at"`
	ReceivedAt sql.NullTime    `db:"received_at"`
	CanceledAt sql.NullTime    `db:"canceled_at"`
}

type PurchaseOrderItem struct {
	POID      uuid.UUID       `db:"po_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	BuyPrice  decimal.Decimal `db:"buy_price"`
}

func OrderToEntity(o Order, items []OrderItem, logs []LogEntry) entities.Order {
	order := entities.Order{
		ID:        o.OrderID,
		EventRef:  nullStringToString(o.EventRef),
		CreatedAt: o.CreatedAt,
		Status:    entities.OrderStatus(o.Status),
		Customer: entities.Customer{
			Name:        o.Name,
			Phone:       nullStringToString(o.Phone),
			Email:       nullStringToString(o.Email),
			Address:     nullStringToString(o.Address),
			City:        nullStringToString(o.City),
			Sector:      nullStringToString(o.Sector),
			CompanyName: nullStringToString(o.CompanyName),
			TaxID:       nullStringToString(o.TaxID),
		},
		Total:             o.Total,
		InvoiceDownloaded: o.InvoiceDownloaded,
		Fragile:           o.Fragile,
		AllowOpening:      o.AllowOpening,
		GeoResolved:       o.GeoResolved,
		RawCity:           nullStringToString(o.RawCity),
	}

	if o.ShippingID.Valid {
		id := o.ShippingID.Int64
		order.ShippingID = &id
	}
	if o.InvoiceDate.Valid {
		at := o.InvoiceDate.Time
		order.InvoiceDate = &at
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
	}

	if len(logs) > 0 {
		order.Log = make([]entities.LogEntry, 0, len(logs))
		for _, l := range logs {
			order.Log = append(order.Log, entities.LogEntry{
				ID:        l.LogID,
				OrderID:   l.OrderID,
				CreatedAt: l.CreatedAt,
				Message:   l.Message,
			})
		}
	}

	return order
}

func PurchaseOrderToEntity(p PurchaseOrder, items []PurchaseOrderItem) entities.PurchaseOrder {
	po := entities.PurchaseOrder{
		ID:         p.POID,
		SupplierID: p.SupplierID,
		Status:     entities.PurchaseOrderStatus(p.Status),
		Total:      p.Total,
		CreatedAt:  p.CreatedAt,
		SentAt:     nullTimeToPtr(p.SentAt),
		ReceivedAt: nullTimeToPtr(p.ReceivedAt),
		CanceledAt: nullTimeToPtr(p.CanceledAt),
	}

	if len(items) > 0 {
		po.Items = make([]entities.PurchaseOrderItem, 0, len(items))
		for _, it := range items {
			po.Items = append(po.Items, entities.PurchaseOrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				BuyPrice:  it.BuyPrice,
			})
		}
	}

	return po
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
