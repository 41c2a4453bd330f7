package handler

import (
	"net/http"
	"slotbook/config"
	"slotbook/di"
	"slotbook/shared/logger"
	"slotbook/transport/http/response"
	"sync"

	transport "slotbook/transport/http"
)

var (
	server     *transport.HTTP
	serverErr  error
	serverOnce sync.Once
)

// Handler is the serverless entrypoint. The service is built once per
// instance so the in-memory ledger survives across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)
		logger.WithService(cfg)

		server, serverErr = di.InitializeService()
	})

	if serverErr != nil {
		logger.ErrorWithStack(serverErr)
		response.WithError(w, serverErr)

		return
	}

	server.ServeHTTP(w, r)
}
