package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/uxdsrini/quick-admin/internal/app/domain"
	"github.com/uxdsrini/quick-admin/internal/app/services"
	"github.com/uxdsrini/quick-admin/internal/config"
	"github.com/uxdsrini/quick-admin/internal/db"
	"github.com/uxdsrini/quick-admin/internal/server"
	"github.com/uxdsrini/quick-admin/internal/server/routes"
	"github.com/uxdsrini/quick-admin/pkg/notifyhook"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return
	}

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	var publisher services.NotificationPublisher
	hook := notifyhook.Client{
		Endpoint: cfg.Webhook.Endpoint,
		Secret:   cfg.Webhook.Secret,
		Timeout:  cfg.WebhookTimeout(),
	}
	if hook.Enabled() {
		publisher = hookPublisher{client: hook}
		slog.Info("Notification webhook enabled", "endpoint", cfg.Webhook.Endpoint)
	}

	names := services.NewStoreNameCache(database)
	highlights := services.NewHighlightTracker(services.DefaultHighlightWindow)
	emitter := services.NewNotificationEmitter(database, publisher, log)
	inbox := services.NewNotificationInbox(database)
	admin := services.NewOrderAdminService(database, emitter)
	watcher := services.NewOrderWatcher(database, names, emitter, highlights, cfg.PollInterval(), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go watcher.Run(ctx)

	srv := server.New(log)
	srv.RegisterRouter(routes.NewOrderRoutes(database, admin, names, highlights, watcher))
	srv.RegisterRouter(routes.NewNotificationRoutes(inbox, log))
	srv.RegisterRouter(routes.NewAPIRoutes(database))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Starting server", "port", cfg.Server.Port, "poll_interval", cfg.PollInterval())
	slog.Error("Closing server", "error", srv.Start(addr))
}

// hookPublisher adapts the webhook client to the emitter's publisher port.
type hookPublisher struct {
	client notifyhook.Client
}

func (p hookPublisher) Publish(ctx context.Context, n domain.Notification) error {
	return p.client.Publish(ctx, notifyhook.Event{
		ID:           n.ID,
		Type:         string(n.Type),
		OrderID:      n.OrderID,
		OrderNumber:  n.OrderNumber,
		CustomerName: n.CustomerName,
		Total:        n.Total,
		Message:      n.Message,
		CreatedAt:    n.CreatedAt,
	})
}
