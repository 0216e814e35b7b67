package app

import (
	"github.com/rasmoura/GestaoPedidosTmb/pkg/database"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/events"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registrations during server initialization.
//
// Lifetimes: one database pool and one EventBus connection per process, both
// constructed in main and closed on shutdown. No global mutable state.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing order", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
}
