package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uxdsrini/quick-admin/internal/app/services"
)

// streamPollInterval is how often the SSE stream re-reads the inbox.
const streamPollInterval = 2 * time.Second

// NotificationRoutes serves the inbox feed, unread count, read transitions
// and the SSE push stream.
type NotificationRoutes struct {
	inbox          *services.NotificationInbox
	streamInterval time.Duration
	log            *slog.Logger
}

// NewNotificationRoutes wires the inbox endpoints.
func NewNotificationRoutes(inbox *services.NotificationInbox, log *slog.Logger) *NotificationRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &NotificationRoutes{inbox: inbox, streamInterval: streamPollInterval, log: log}
}

// RegisterRoutes registers the inbox endpoints.
func (n *NotificationRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api")

	api.GET("/notifications", n.handleFeed)
	api.GET("/notifications/unread-count", n.handleUnreadCount)
	api.PUT("/notifications/:id/read", n.handleMarkRead)
	api.POST("/notifications/:id/open", n.handleOpen)
	api.GET("/notifications/stream", n.handleStream)
}

func (n *NotificationRoutes) handleFeed(c echo.Context) error {
	feed, err := n.inbox.Feed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load notifications")
	}
	return c.JSON(http.StatusOK, feed)
}

func (n *NotificationRoutes) handleUnreadCount(c echo.Context) error {
	count, err := n.inbox.UnreadCount(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to count notifications")
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}

func (n *NotificationRoutes) handleMarkRead(c echo.Context) error {
	err := n.inbox.MarkRead(c.Request().Context(), c.Param("id"))
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, services.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark notification read")
	}
}

// handleOpen is the drill-through path: mark read, then hand the record to
// the client for navigation.
func (n *NotificationRoutes) handleOpen(c echo.Context) error {
	record, err := n.inbox.Open(c.Request().Context(), c.Param("id"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, record)
	case errors.Is(err, services.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to open notification")
	}
}

// handleStream pushes newly persisted notifications over SSE so the UI does
// not have to poll the feed. The initial feed primes the seen set without
// being re-sent; clients load it via GET /api/notifications first.
func (n *NotificationRoutes) handleStream(c echo.Context) error {
	w := c.Response().Writer
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	ctx := c.Request().Context()
	ticker := time.NewTicker(n.streamInterval)
	defer ticker.Stop()

	seen := map[string]bool{}
	initial, err := n.inbox.Feed(ctx)
	if err != nil {
		return err
	}
	for _, record := range initial {
		seen[record.ID] = true
	}

	// Commit headers before the first event so clients see the stream open.
	// From here on the response is committed: errors are logged and the
	// stream closed cleanly, never turned into an error response.
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			feed, err := n.inbox.Feed(ctx)
			if err != nil {
				n.log.Warn("notification stream feed failed, closing", "error", err)
				return nil
			}
			sent := false
			for i := len(feed) - 1; i >= 0; i-- {
				record := feed[i]
				if seen[record.ID] {
					continue
				}
				seen[record.ID] = true
				payload, err := json.Marshal(record)
				if err != nil {
					n.log.Warn("notification stream encode failed, closing", "error", err)
					return nil
				}
				fmt.Fprintf(w, "event: notification\ndata: %s\n\n", payload)
				sent = true
			}
			if sent {
				flusher.Flush()
			}
		}
	}
}
