package function_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"tatzy/config"
	jwtMocks "tatzy/infras/jwt/mocks"
	"tatzy/infras/otel/mocks"
	bookingMocks "tatzy/internal/domains/booking/mocks"
	"tatzy/internal/domains/booking/model"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/internal/handlers/booking"
	"tatzy/shared/constant"
	"tatzy/transport/function"
	"tatzy/transport/http/middleware"
	"tatzy/transport/http/router"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bookingID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newRoutes(t *testing.T) (*bookingMocks.MockBookingService, *function.Routes, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	otel := mocks.NewOtel()
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, otel)
	app := middleware.NewAppMiddleware(otel, cfg, nil)
	admin := middleware.NewAdminMiddleware(jwtMocks.NewMockJWT(ctrl), otel, cfg)

	r := router.New(router.DomainHandlers{Booking: handler}, router.Middlewares{App: app, Admin: admin}, cfg)

	return svc, function.New(handler, app, admin), r.Handler(nil)
}

func TestItemID(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "/api/bookings/item?id=" + bookingID, want: bookingID},
		{target: "/api/bookings/" + bookingID, want: bookingID},
		{target: "/api/bookings/" + bookingID + "/", want: bookingID},
		{target: "/api/bookings/item", want: ""},
		{target: "/api/bookings", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, function.ItemID(httptest.NewRequest(http.MethodGet, tt.target, nil)))
		})
	}
}

func TestRoutes_Collection_CreateUsesWebSource(t *testing.T) {
	svc, routes, _ := newRoutes(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Cond(func(meta dto.RequestMetadata) bool { return meta.Source == constant.SourceWeb })).
		Return(dto.CreateBookingResult{Booking: dto.CreateBookingResponse{ID: bookingID, Status: model.StatusPending}, Outcome: dto.OutcomeCreated}, nil)

	body := `{"customerName":"Jean Dupont","customerPhone":"(514) 555-1234","pickupAddress":"123 rue Principale, Montréal",` +
		`"dropoffAddress":"456 avenue du Parc, Montréal","pickupDateTime":"` + time.Now().Add(24*time.Hour).UTC().Format(time.RFC3339) + `"}`

	rec := httptest.NewRecorder()
	routes.Collection(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	_, routes, _ := newRoutes(t)

	rec := httptest.NewRecorder()
	routes.Collection(rec, httptest.NewRequest(http.MethodPut, "/api/bookings", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	routes.Item(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID, nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// Both transports must render the same bytes for the same outcome.
func TestRoutes_MatchRouterTransport(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		router   string
		function string
		body     string
		call     func(routes *function.Routes) http.HandlerFunc
		expect   func(svc *bookingMocks.MockBookingService)
	}{
		{
			name:     "list",
			method:   http.MethodGet,
			router:   "/api/bookings?page=2&limit=1",
			function: "/api/bookings?page=2&limit=1",
			call:     func(routes *function.Routes) http.HandlerFunc { return routes.Collection },
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{
					Items:      []dto.BookingResponse{},
					Pagination: dto.Pagination{Page: 2, Limit: 1, Total: 1, TotalPages: 1},
				}, nil).Times(2)
			},
		},
		{
			name:     "get",
			method:   http.MethodGet,
			router:   "/api/bookings/" + bookingID,
			function: "/api/bookings/item?id=" + bookingID,
			call:     func(routes *function.Routes) http.HandlerFunc { return routes.Item },
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingResponse{ID: bookingID, Status: model.StatusPending}, nil).Times(2)
			},
		},
		{
			name:     "update validation error",
			method:   http.MethodPatch,
			router:   "/api/bookings/" + bookingID,
			function: "/api/bookings/item?id=" + bookingID,
			body:     `{"status":"LOST"}`,
			call:     func(routes *function.Routes) http.HandlerFunc { return routes.Item },
			expect:   func(*bookingMocks.MockBookingService) {},
		},
		{
			name:     "cancel",
			method:   http.MethodDelete,
			router:   "/api/bookings/" + bookingID,
			function: "/api/bookings/" + bookingID,
			call:     func(routes *function.Routes) http.HandlerFunc { return routes.Item },
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(nil).Times(2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, routes, mux := newRoutes(t)
			tt.expect(svc)

			viaRouter := httptest.NewRecorder()
			mux.ServeHTTP(viaRouter, httptest.NewRequest(tt.method, tt.router, strings.NewReader(tt.body)))

			viaFunction := httptest.NewRecorder()
			tt.call(routes)(viaFunction, httptest.NewRequest(tt.method, tt.function, strings.NewReader(tt.body)))

			require.True(t, json.Valid(viaRouter.Body.Bytes()))
			assert.Equal(t, viaRouter.Code, viaFunction.Code)
			assert.Equal(t, viaRouter.Body.String(), viaFunction.Body.String())
		})
	}
}
