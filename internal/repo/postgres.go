package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"order_id", "event_ref", "created_at", "status",
	"name", "phone", "email", "address", "city", "sector",
	"raw_city", "geo_resolved", "company_name", "tax_id",
	"total", "shipping_id", "invoice_date", "invoice_downloaded",
	"fragile", "allow_opening",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts a new order. It returns false without error when the
// row already exists: the unique indexes on order_id and event_ref are the
// hard duplicate barrier under concurrent deliveries, the in-service checks
// only shortcut the common case.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, nullString(o.EventRef), o.CreatedAt, string(o.Status),
			o.Customer.Name, nullString(o.Customer.Phone), nullString(o.Customer.Email),
			nullString(o.Customer.Address), nullString(o.Customer.City), nullString(o.Customer.Sector),
			nullString(o.RawCity), o.GeoResolved,
			nullString(o.Customer.CompanyName), nullString(o.Customer.TaxID),
			o.Total, nullInt64Ptr(o.ShippingID), nullTimePtr(o.InvoiceDate), o.InvoiceDownloaded,
			o.Fragile, o.AllowOpening,
		).
		Suffix("ON CONFLICT DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to create order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) AppendLogs(ctx context.Context, entries []entities.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	q := r.qb.Insert("order_logs").
		Columns("log_id", "order_id", "created_at", "message")

	for _, e := range entries {
		id := e.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		q = q.Values(id, e.OrderID, e.CreatedAt, e.Message)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append order logs: %w", err)
	}
	return nil
}

// HasEventMarker reports whether any order's audit log references the event.
func (r *postgresRepo) HasEventMarker(ctx context.Context, marker string) (bool, error) {
	query, args := r.qb.Select("1").
		From("order_logs").
		Where(sq.Eq{"message": marker}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up event marker: %w", err)
	}
	return true, nil
}

// ExistsByDateAndTotal is the legacy duplicate heuristic for orders created
// through a path that left no event marker.
func (r *postgresRepo) ExistsByDateAndTotal(ctx context.Context, createdAt time.Time, total decimal.Decimal) (bool, error) {
	query, args := r.qb.Select("1").
		From("orders").
		Where(sq.Eq{"created_at": createdAt, "total": total}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up order by date and total: %w", err)
	}
	return true, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	query, args = r.qb.Select("log_id", "order_id", "created_at", "message").
		From("order_logs").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var logs []LogEntry
	if err := r.selectContext(ctx, &logs, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order logs: %w", err)
	}

	return OrderToEntity(order, items, logs), nil
}

func (r *postgresRepo) ListRecentOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], nil))
	}
	return result, nil
}

func (r *postgresRepo) OrdersByShippingIDs(ctx context.Context, shippingIDs []int64) ([]entities.Order, error) {
	if len(shippingIDs) == 0 {
		return []entities.Order{}, nil
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"shipping_id": shippingIDs}).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders by shipping ids: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil, nil))
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to update order status", entities.ErrOrderNotFound)
}

func (r *postgresRepo) SetShippingID(ctx context.Context, orderID string, shippingID int64) error {
	query, args := r.qb.Update("orders").
		Set("shipping_id", shippingID).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to set shipping id", entities.ErrOrderNotFound)
}

func (r *postgresRepo) SetInvoiceDownloaded(ctx context.Context, orderID string, at time.Time) error {
	query, args := r.qb.Update("orders").
		Set("invoice_downloaded", true).
		Set("invoice_date", at).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to set invoice downloaded", entities.ErrOrderNotFound)
}

func (r *postgresRepo) UpdateGeography(ctx context.Context, orderID, city, sector string) error {
	query, args := r.qb.Update("orders").
		Set("city", city).
		Set("sector", sector).
		Set("geo_resolved", true).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to update order geography", entities.ErrOrderNotFound)
}

func (r *postgresRepo) UpdateDeliveryOptions(ctx context.Context, orderID string, fragile, allowOpening bool) error {
	query, args := r.qb.Update("orders").
		Set("fragile", fragile).
		Set("allow_opening", allowOpening).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to update delivery options", entities.ErrOrderNotFound)
}

func (r *postgresRepo) CreatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) error {
	query, args := r.qb.Insert("purchase_orders").
		Columns("po_id", "supplier_id", "status", "total", "created_at", "sent_at", "received_at", "canceled_at").
		Values(
			po.ID, po.SupplierID, string(po.Status), po.Total, po.CreatedAt,
			nullTimePtr(po.SentAt), nullTimePtr(po.ReceivedAt), nullTimePtr(po.CanceledAt),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create purchase order: %w", err)
	}

	if len(po.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("purchase_order_items").
		Columns("po_id", "product_id", "quantity", "buy_price")
	for _, it := range po.Items {
		q = q.Values(po.ID, it.ProductID, it.Quantity, it.BuyPrice)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create purchase order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetPurchaseOrderByID(ctx context.Context, id uuid.UUID) (entities.PurchaseOrder, error) {
	query, args := r.qb.Select("po_id", "supplier_id", "status", "total", "created_at", "sent_at", "received_at", "canceled_at").
		From("purchase_orders").
		Where(sq.Eq{"po_id": id}).
		MustSql()

	var po PurchaseOrder
	err := r.getContext(ctx, &po, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PurchaseOrder{}, entities.ErrPurchaseOrderNotFound
	}
	if err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("failed to get purchase order: %w", err)
	}

	query, args = r.qb.Select("po_id", "product_id", "quantity", "buy_price").
		From("purchase_order_items").
		Where(sq.Eq{"po_id": id}).
		MustSql()

	var items []PurchaseOrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("failed to get purchase order items: %w", err)
	}

	return PurchaseOrderToEntity(po, items), nil
}

func (r *postgresRepo) UpdatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) error {
	query, args := r.qb.Update("purchase_orders").
		Set("status", string(po.Status)).
		Set("sent_at", nullTimePtr(po.SentAt)).
		Set("received_at", nullTimePtr(po.ReceivedAt)).
		Set("canceled_at", nullTimePtr(po.CanceledAt)).
		Where(sq.Eq{"po_id": po.ID}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to update purchase order", entities.ErrPurchaseOrderNotFound)
}

func (r *postgresRepo) execOne(ctx context.Context, query string, args []any, msg string, notFound error) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64Ptr(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
