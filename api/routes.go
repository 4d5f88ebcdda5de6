package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/auth"
	accounthandler "github.com/carson-networks/transfer-server/internal/handlers/v1/account"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/status"
	transferhandler "github.com/carson-networks/transfer-server/internal/handlers/v1/transfer"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/transfer"
)

type Rest struct {
	Logger *logrus.Logger
	Port   string
	Engine *transfer.Engine
	Guard  *auth.Guard
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("transfer-server", "1.0.0"))
	transferhandler.NewCreateTransferHandler(r.Engine, r.Guard).Register(humaAPI)
	accounthandler.NewBalanceHandler(r.Engine, r.Guard).Register(humaAPI)
	accounthandler.NewHistoryHandler(r.Engine, r.Guard).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.Handle("/status", statusHandler)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.LoggingWrapper("Rest", r.Logger, mux),
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
