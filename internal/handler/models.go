package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/service"

	"github.com/shopspring/decimal"
)

// EventTime parses the commerce platform's timestamps, which come without a
// timezone suffix and are documented as UTC.
type EventTime struct {
	time.Time
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339, Value: s}
}

// WebhookOrder mirrors the platform's order schema; the same shape arrives on
// the webhook and on the message bus.
type WebhookOrder struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number,omitempty"`
	CreatedAt EventTime       `json:"date_created"`
	Total     string          `json:"total,omitempty"`
	Billing   *WebhookAddress `json:"billing,omitempty"`
	Shipping  *WebhookAddress `json:"shipping,omitempty"`
	LineItems []WebhookItem   `json:"line_items,omitempty"`
}

type WebhookAddress struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type WebhookItem struct {
	ProductID string `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Price     string `json:"price,omitempty"`
}

func OrderEventFromJSON(o WebhookOrder) service.OrderEvent {
	ref := o.Number
	if ref == "" && o.ID != 0 {
		ref = strconv.FormatInt(o.ID, 10)
	}

	items := make([]service.EventItem, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		items = append(items, service.EventItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return service.OrderEvent{
		Ref:       ref,
		CreatedAt: o.CreatedAt.Time,
		Total:     o.Total,
		Billing:   addressFromJSON(o.Billing),
		Shipping:  addressFromJSON(o.Shipping),
		Items:     items,
	}
}

func addressFromJSON(a *WebhookAddress) *service.EventAddress {
	if a == nil {
		return nil
	}
	return &service.EventAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		TaxID:     a.TaxID,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Phone:     a.Phone,
		Email:     a.Email,
	}
}

// WebhookAck acknowledges an event delivery
type WebhookAck struct {
	Result string `json:"result"`
}

// Order is the back-office representation of an order
type Order struct {
	OrderID           string     `json:"order_id"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	Customer          Customer   `json:"customer"`
	Items             []Item     `json:"items,omitempty"`
	Total             string     `json:"total"`
	ShippingID        *int64     `json:"shipping_id,omitempty"`
	InvoiceDate       *time.Time `json:"invoice_date,omitempty"`
	InvoiceDownloaded bool       `json:"invoice_downloaded"`
	Fragile           bool       `json:"fragile"`
	AllowOpening      bool       `json:"allow_opening"`
	GeoResolved       bool       `json:"geo_resolved"`
	RawCity           string     `json:"raw_city,omitempty"`
	Log               []LogEntry `json:"log,omitempty"`
}

type Customer struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Sector      string `json:"sector,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
}

type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type LogEntry struct {
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		Sector:      c.Sector,
		CompanyName: c.CompanyName,
		TaxID:       c.TaxID,
	}
}

func ItemEntityToJSON(i entities.OrderItem) Item {
	return Item{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice.StringFixed(2),
		Subtotal:  i.Subtotal().StringFixed(2),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}
	log := make([]LogEntry, 0, len(o.Log))
	for _, e := range o.Log {
		log = append(log, LogEntry{CreatedAt: e.CreatedAt, Message: e.Message})
	}

	return Order{
		OrderID:           o.ID,
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
		Customer:          CustomerEntityToJSON(o.Customer),
		Items:             items,
		Total:             o.Total.StringFixed(2),
		ShippingID:        o.ShippingID,
		InvoiceDate:       o.InvoiceDate,
		InvoiceDownloaded: o.InvoiceDownloaded,
		Fragile:           o.Fragile,
		AllowOpening:      o.AllowOpening,
		GeoResolved:       o.GeoResolved,
		RawCity:           o.RawCity,
		Log:               log,
	}
}

// ShipmentResponse reports a freshly registered shipment
type ShipmentResponse struct {
	ShippingID   int64  `json:"shipping_id"`
	TrackingCode string `json:"tracking_code"`
}

// LabelResponse carries the codes printed on a shipping label
type LabelResponse struct {
	TrackingCode string `json:"tracking_code"`
	SortCode     string `json:"sort_code"`
	Recipient    string `json:"recipient"`
	City         string `json:"city"`
	Sector       string `json:"sector,omitempty"`
}

// CancelRequest optional cancellation reason
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// GeographyRequest manual city/sector assignment
type GeographyRequest struct {
	City   string `json:"city" validate:"required"`
	Sector string `json:"sector,omitempty"`
}

// DeliveryOptionsRequest carrier handling flags
type DeliveryOptionsRequest struct {
	Fragile      bool `json:"fragile"`
	AllowOpening bool `json:"allow_opening"`
}

// DeliveriesRequest is a carrier delivery manifest
type DeliveriesRequest struct {
	ShippingIDs []int64 `json:"shipping_ids" validate:"required,min=1"`
}

// DeliveriesResponse reports how many orders the manifest newly delivered
type DeliveriesResponse struct {
	Delivered int `json:"delivered"`
}

// CreatePurchaseOrderRequest draft purchase order payload
type CreatePurchaseOrderRequest struct {
	SupplierID string                   `json:"supplier_id" validate:"required"`
	Items      []PurchaseOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type PurchaseOrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	BuyPrice  string `json:"buy_price" validate:"required"`
}

func PurchaseOrderItemsFromJSON(items []PurchaseOrderItemInput) ([]entities.PurchaseOrderItem, error) {
	out := make([]entities.PurchaseOrderItem, 0, len(items))
	for _, it := range items {
		price, err := decimal.NewFromString(it.BuyPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.PurchaseOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			BuyPrice:  price.Round(2),
		})
	}
	return out, nil
}

type PurchaseOrder struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	Status     string              `json:"status"`
	Items      []PurchaseOrderItem `json:"items,omitempty"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	SentAt     *time.Time          `json:"sent_at,omitempty"`
	ReceivedAt *time.Time          `json:"received_at,omitempty"`
	CanceledAt *time.Time          `json:"canceled_at,omitempty"`
}

type PurchaseOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	BuyPrice  string `json:"buy_price"`
	Subtotal  string `json:"subtotal"`
}

func PurchaseOrderEntityToJSON(po entities.PurchaseOrder) PurchaseOrder {
	items := make([]PurchaseOrderItem, 0, len(po.Items))
	for _, it := range po.Items {
		items = append(items, PurchaseOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			BuyPrice:  it.BuyPrice.StringFixed(2),
			Subtotal:  it.Subtotal().StringFixed(2),
		})
	}

	return PurchaseOrder{
		ID:         po.ID.String(),
		SupplierID: po.SupplierID,
		Status:     string(po.Status),
		Items:      items,
		Total:      po.Total.StringFixed(2),
		CreatedAt:  po.CreatedAt,
		SentAt:     po.SentAt,
		ReceivedAt: po.ReceivedAt,
		CanceledAt: po.CanceledAt,
	}
}
