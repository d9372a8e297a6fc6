package handler

import (
	"net/http"
	"sync"
	"tatzy/config"
	"tatzy/di"
	"tatzy/shared/logger"
)

var (
	server http.Handler
	once   sync.Once
)

// Handler serves every route without a dedicated function: health, info, swagger and the 404 fallback.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		server = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
