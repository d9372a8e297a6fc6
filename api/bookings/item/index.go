package handler

import (
	"net/http"
	"sync"
	"tatzy/config"
	"tatzy/di"
	"tatzy/shared/logger"
	"tatzy/transport/function"
)

var (
	routes *function.Routes
	once   sync.Once
)

// Handler serves GET, PATCH and DELETE /api/bookings/{id}; the id arrives as a rewritten query parameter.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		routes = di.InitializeFunctions()
	})

	routes.Item(w, r)
}
