package function

import (
	"net/http"
	"path"
	"strings"
	"tatzy/internal/handlers/booking"
	"tatzy/shared/constant"
	"tatzy/transport/http/middleware"
	"tatzy/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes adapts the booking handler to file-route functions, where the platform
// has already matched the path and each file serves every verb of one route.
type Routes struct {
	collection http.Handler
	item       http.Handler
}

func New(handler booking.Handler, app middleware.AppMiddleware, admin middleware.Admin) *Routes {
	common := chi.Chain(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		app.Tracing,
		app.AccessLog,
		app.SecureHeaders,
		app.CORS(),
	)

	intake := app.RateLimit()

	collection := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			intake(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handler.Create(w, r, constant.SourceWeb)
			})).ServeHTTP(w, r)
		case http.MethodGet:
			admin.Admin(http.HandlerFunc(handler.List)).ServeHTTP(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	})

	item := admin.Admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ItemID(r)

		switch r.Method {
		case http.MethodGet:
			handler.Get(w, r, id)
		case http.MethodPatch:
			handler.Update(w, r, id)
		case http.MethodDelete:
			handler.Cancel(w, r, id)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPatch, http.MethodDelete)
		}
	}))

	return &Routes{
		collection: common.Handler(collection),
		item:       common.Handler(item),
	}
}

// Collection serves /api/bookings.
func (f *Routes) Collection(w http.ResponseWriter, r *http.Request) {
	f.collection.ServeHTTP(w, r)
}

// Item serves /api/bookings/{id}.
func (f *Routes) Item(w http.ResponseWriter, r *http.Request) {
	f.item.ServeHTTP(w, r)
}

// ItemID reads the booking id from the rewritten id query parameter, falling
// back to the last path segment.
func ItemID(r *http.Request) string {
	if id := r.URL.Query().Get(constant.RequestParamID); id != "" {
		return id
	}

	segment := path.Base(strings.TrimSuffix(r.URL.Path, "/"))
	if segment == "." || segment == "/" || segment == "bookings" || segment == "item" {
		return ""
	}

	return segment
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	response.WithMethodNotAllowed(w)
}
