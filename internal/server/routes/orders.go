package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/ports"
	"github.com/uxdsrini/quick-admin/internal/app/services"
)

// OrderRoutes serves the order list and the admin transition endpoints.
type OrderRoutes struct {
	orders     ports.OrderStore
	admin      *services.OrderAdminService
	names      *services.StoreNameCache
	highlights *services.HighlightTracker
	watcher    *services.OrderWatcher
}

// NewOrderRoutes wires the order endpoints.
func NewOrderRoutes(orders ports.OrderStore, admin *services.OrderAdminService, names *services.StoreNameCache, highlights *services.HighlightTracker, watcher *services.OrderWatcher) *OrderRoutes {
	return &OrderRoutes{orders: orders, admin: admin, names: names, highlights: highlights, watcher: watcher}
}

// RegisterRoutes registers the order endpoints.
func (o *OrderRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api")

	api.GET("/orders", o.handleList)
	api.PUT("/orders/:id/status", o.handleUpdateStatus)
	api.PUT("/orders/:id/payment", o.handleUpdatePayment)
}

type orderRow struct {
	domain.Order
	StoreName string `json:"store_name"`
	Fresh     bool   `json:"fresh"`
}

type orderListResponse struct {
	Orders       []orderRow `json:"orders"`
	LastPolledAt *time.Time `json:"last_polled_at,omitempty"`
}

func (o *OrderRoutes) handleList(c echo.Context) error {
	ctx := c.Request().Context()
	orders, err := o.orders.ListOrdersByCreatedDesc(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list orders")
	}

	rows := make([]orderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderRow{
			Order:     order,
			StoreName: o.names.Resolve(ctx, order.StoreID),
			Fresh:     o.highlights.IsFresh(order.ID),
		})
	}

	resp := orderListResponse{Orders: rows}
	if polled := o.watcher.LastPolledAt(); !polled.IsZero() {
		resp.LastPolledAt = &polled
	}
	return c.JSON(http.StatusOK, resp)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type paymentUpdateRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type transitionResponse struct {
	OK               bool `json:"ok"`
	NotificationLost bool `json:"notification_lost,omitempty"`
}

func (o *OrderRoutes) handleUpdateStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := o.admin.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	return transitionResult(c, err)
}

func (o *OrderRoutes) handleUpdatePayment(c echo.Context) error {
	var req paymentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := o.admin.UpdatePaymentStatus(c.Request().Context(), c.Param("id"), domain.PaymentStatus(req.PaymentStatus))
	return transitionResult(c, err)
}

// transitionResult maps transition outcomes onto HTTP. A lost notification
// is reported on a successful response rather than failing the transition,
// because the order write already committed.
func transitionResult(c echo.Context, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, transitionResponse{OK: true})
	case errors.Is(err, services.ErrNotificationLost):
		return c.JSON(http.StatusOK, transitionResponse{OK: true, NotificationLost: true})
	case errors.Is(err, services.ErrUnknownStatus), errors.Is(err, services.ErrUnknownPaymentStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update order")
	}
}
