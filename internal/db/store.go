package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
)

const orderColumns = `id, order_number, customer_name, customer_phone, delivery_address,
	subtotal, delivery_fee, discount, total, status, payment_status, store_id, created_at`

// ListOrdersByCreatedDesc returns all orders, most recent first, with line
// items attached.
func (d *Database) ListOrdersByCreatedDesc(ctx context.Context) ([]domain.Order, error) {
	rows, err := d.query(ctx, "ListOrdersByCreatedDesc",
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := d.listOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// GetOrder fetches one order with its line items.
func (d *Database) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	row := d.queryRow(ctx, "GetOrder",
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, ports.ErrNotFound
		}
		return domain.Order{}, err
	}
	items, err := d.listOrderItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items
	return order, nil
}

// UpdateOrderStatus writes the delivery-status axis only.
func (d *Database) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return d.updateOrderField(ctx, "UpdateOrderStatus",
		`UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
}

// UpdateOrderPaymentStatus writes the payment-status axis only.
func (d *Database) UpdateOrderPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	return d.updateOrderField(ctx, "UpdateOrderPaymentStatus",
		`UPDATE orders SET payment_status = ? WHERE id = ?`, string(status), id)
}

func (d *Database) updateOrderField(ctx context.Context, name, query string, args ...any) error {
	result, err := d.exec(ctx, name, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// InsertOrder stores an order and its line items. Used by seeding and tests;
// the dashboard itself never creates orders.
func (d *Database) InsertOrder(ctx context.Context, order domain.Order) error {
	_, err := d.exec(ctx, "InsertOrder",
		`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Number, order.CustomerName, order.CustomerPhone, order.DeliveryAddress,
		order.Subtotal, order.DeliveryFee, order.Discount, order.Total,
		string(order.Status), string(order.PaymentStatus), order.StoreID, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	for _, item := range order.Items {
		_, err := d.exec(ctx, "InsertOrderItem",
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, line_total)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.LineTotal)
		if err != nil {
			return fmt.Errorf("insert order item for %s: %w", order.ID, err)
		}
	}
	return nil
}

func (d *Database) listOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := d.query(ctx, "ListOrderItems",
		`SELECT product_id, product_name, quantity, unit_price, line_total
		 FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type orderScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderScanner) (domain.Order, error) {
	var order domain.Order
	var status, payment string
	err := row.Scan(&order.ID, &order.Number, &order.CustomerName, &order.CustomerPhone,
		&order.DeliveryAddress, &order.Subtotal, &order.DeliveryFee, &order.Discount,
		&order.Total, &status, &payment, &order.StoreID, &order.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(payment)
	return order, nil
}

// GetStore fetches a store record by id.
func (d *Database) GetStore(ctx context.Context, id string) (domain.Store, error) {
	var store domain.Store
	err := d.queryRow(ctx, "GetStore",
		`SELECT id, name, address, phone FROM stores WHERE id = ?`, id).
		Scan(&store.ID, &store.Name, &store.Address, &store.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Store{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Store{}, err
	}
	return store, nil
}

// InsertStore stores a store record. Used by seeding and tests.
func (d *Database) InsertStore(ctx context.Context, store domain.Store) error {
	_, err := d.exec(ctx, "InsertStore",
		`INSERT INTO stores (id, name, address, phone) VALUES (?, ?, ?, ?)`,
		store.ID, store.Name, store.Address, store.Phone)
	return err
}

// InsertNotification persists one notification record.
func (d *Database) InsertNotification(ctx context.Context, n domain.Notification) error {
	_, err := d.exec(ctx, "InsertNotification",
		`INSERT INTO notifications (id, order_id, order_number, customer_name, total, type, message, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.OrderID, n.OrderNumber, n.CustomerName, n.Total, string(n.Type), n.Message, boolToInt(n.Read), n.CreatedAt)
	return err
}

// ListNotifications returns up to limit records, most recent first.
func (d *Database) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := d.query(ctx, "ListNotifications",
		`SELECT id, order_id, order_number, customer_name, total, type, message, is_read, created_at
		 FROM notifications ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// GetNotification fetches one notification record.
func (d *Database) GetNotification(ctx context.Context, id string) (domain.Notification, error) {
	n, err := scanNotification(d.queryRow(ctx, "GetNotification",
		`SELECT id, order_id, order_number, customer_name, total, type, message, is_read, created_at
		 FROM notifications WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Notification{}, ports.ErrNotFound
	}
	return n, err
}

// CountUnreadNotifications returns how many records are still unread.
func (d *Database) CountUnreadNotifications(ctx context.Context) (int64, error) {
	var count int64
	err := d.queryRow(ctx, "CountUnreadNotifications",
		`SELECT COUNT(*) FROM notifications WHERE is_read = 0`).Scan(&count)
	return count, err
}

// MarkNotificationRead flips the read flag; already-read rows are left as is.
func (d *Database) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := d.exec(ctx, "MarkNotificationRead",
		`UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	return err
}

func scanNotification(row orderScanner) (domain.Notification, error) {
	var n domain.Notification
	var typ string
	var isRead int64
	err := row.Scan(&n.ID, &n.OrderID, &n.OrderNumber, &n.CustomerName, &n.Total, &typ, &n.Message, &isRead, &n.CreatedAt)
	if err != nil {
		return domain.Notification{}, err
	}
	n.Type = domain.NotificationType(typ)
	n.Read = isRead != 0
	return n, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

var (
	_ ports.OrderStore        = (*Database)(nil)
	_ ports.StoreDirectory    = (*Database)(nil)
	_ ports.NotificationStore = (*Database)(nil)
)
