package booking

import (
	"net/http"
	"tatzy/shared/constant"

	"github.com/go-chi/chi/v5"
)

// Guards are the middlewares placed in front of the booking routes.
// Intake sits before public creation, Admin before every dispatcher route.
type Guards struct {
	Intake func(http.Handler) http.Handler
	Admin  func(http.Handler) http.Handler
}

func passthrough(next http.Handler) http.Handler { return next }

func (g Guards) orDefault() Guards {
	if g.Intake == nil {
		g.Intake = passthrough
	}

	if g.Admin == nil {
		g.Admin = passthrough
	}

	return g
}

func (handler *Handler) Router(router chi.Router, guards Guards) {
	guards = guards.orDefault()

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.With(guards.Intake).Post("/", handler.CreateBooking)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(guards.Admin)

			admin.Get("/", handler.GetBookings)
			admin.Get("/{id}", handler.GetBookingByID)
			admin.Patch("/{id}", handler.UpdateBooking)
			admin.Delete("/{id}", handler.CancelBooking)
		})
	})
}

// CreateBooking handles a public booking request.
// @Summary Create a booking
// @Description Submit a taxi booking. The response only echoes the id, status and pickup time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	handler.Create(w, r, constant.SourceAPI)
}

// GetBookings lists bookings, newest first.
// @Summary List bookings
// @Description Retrieve one page of bookings with optional status, driver and pickup date filters.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, capped at 100" default(20)
// @Param status query string false "Filter by status" Enums(PENDING, CONFIRMED, ASSIGNED, IN_PROGRESS, COMPLETED, CANCELLED, NO_SHOW)
// @Param driverId query string false "Filter by driver ID"
// @Param fromDate query string false "Pickup at or after (RFC 3339)"
// @Param toDate query string false "Pickup at or before (RFC 3339)"
// @Success 200 {object} response.List[dto.BookingResponse, dto.Pagination] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	handler.List(w, r)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking and its assigned driver.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	handler.Get(w, r, chi.URLParam(r, constant.RequestParamID))
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Change the status, driver, dispatcher notes or final price. Omitted fields are left untouched; a null driverId unassigns the driver.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	handler.Update(w, r, chi.URLParam(r, constant.RequestParamID))
}

// CancelBooking cancels a booking by its ID.
// @Summary Cancel a booking by ID
// @Description Soft delete: the booking is kept with status CANCELLED.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.Cancel(w, r, chi.URLParam(r, constant.RequestParamID))
}
