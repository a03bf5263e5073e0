package components

import (
	"tourdesk/internal/handler"
	"tourdesk/internal/handler/api"
	"tourdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPackageHandler,
		api.NewQuoteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
