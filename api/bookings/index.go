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

// Handler serves POST and GET /api/bookings.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		routes = di.InitializeFunctions()
	})

	routes.Collection(w, r)
}
