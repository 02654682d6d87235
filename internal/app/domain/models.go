package domain

import "time"

// OrderStatus is the delivery lifecycle axis of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle value.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus is the payment lifecycle axis, independent of OrderStatus.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether the payment status is a known value.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// OrderItem is one ordered line item.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Order is an order record as held by the marketplace order collection.
// The engine treats it as read-only apart from the two lifecycle axes.
type Order struct {
	ID              string        `json:"id"`
	Number          string        `json:"order_number"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	DeliveryAddress string        `json:"delivery_address"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	Discount        float64       `json:"discount"`
	Total           float64       `json:"total"`
	Items           []OrderItem   `json:"items"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	StoreID         string        `json:"store_id"`
	CreatedAt       time.Time     `json:"created_at"`
}

// NotificationType tags the triggering event class of a notification.
type NotificationType string

const (
	NotificationNewOrder      NotificationType = "new_order"
	NotificationStatusUpdate  NotificationType = "status_update"
	NotificationPaymentUpdate NotificationType = "payment_update"
)

// Notification is a durable inbox record. All fields except Read are
// immutable once persisted.
type Notification struct {
	ID           string           `json:"id"`
	OrderID      string           `json:"order_id"`
	OrderNumber  string           `json:"order_number"`
	CustomerName string           `json:"customer_name"`
	Total        float64          `json:"total"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Store is a marketplace store record, used only for display-name lookups.
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
