package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/handlers/v1/account"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/report"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the full HTTP handler: the Huma API with its middleware
// chain plus the plain /status probe, wrapped in CORS and panic recovery.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Finance Server", "1.0.0")
	humaAPI := humago.New(mux, humaConfig)
	humaAPI.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		identity.Middleware(humaAPI, r.Storage.Tokens, r.Logger),
	)

	registerRoutes(humaAPI, r.Service)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return corsMiddleware(recoveryMiddleware(r.Logger, mux))
}

func registerRoutes(api huma.API, services *service.Service) {
	transaction.NewCreateTransactionHandler(services.Ledger).Register(api)
	transaction.NewListTransactionsHandler(services.Ledger).Register(api)
	transaction.NewListTransactionsPaginatedHandler(services.Ledger).Register(api)
	transaction.NewDeleteTransactionHandler(services.Ledger).Register(api)

	account.NewCreateAccountHandler(services.Accounts).Register(api)
	account.NewListAccountsHandler(services.Accounts).Register(api)

	category.NewCreateCategoryHandler(services.Categories).Register(api)
	category.NewListCategoriesHandler(services.Categories).Register(api)

	report.NewCashflowHandler(services.Reporting).Register(api)
	report.NewCategoriesHandler(services.Reporting).Register(api)
	report.NewSummaryHandler(services.Reporting).Register(api)
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
