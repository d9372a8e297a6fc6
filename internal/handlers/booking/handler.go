package booking

import (
	"net/http"
	"tatzy/infras/otel"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/internal/domains/booking/service"
	"tatzy/shared"
	"tatzy/shared/constant"
	"tatzy/shared/failure"
	"tatzy/shared/validator"
	"tatzy/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	messageCreated   = "Réservation créée avec succès"
	messageUpdated   = "Réservation mise à jour"
	messageCancelled = "Réservation annulée"
	messageNotFound  = "Réservation non trouvée"
)

// Handler is the transport neutral booking API. Both the router and the
// file-route functions call it, so their responses are identical.
type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Create validates a public booking request and stores it. A filled honeypot
// gets the same 201 response while nothing is stored.
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request, source string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	meta := dto.RequestMetadata{
		IPAddress: shared.ClientIP(r),
		UserAgent: shared.UserAgent(r),
		Source:    source,
	}

	res, err := handler.service.Create(ctx, req, meta)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	if !res.Silent() {
		scope.AddEvent("Booking created " + res.Booking.ID)
	}

	response.WithMessageAndJSON(w, http.StatusCreated, messageCreated, res.Booking)
}

// List returns one page of bookings matching the query filters.
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()

	req := dto.BookingQueryRequest{}
	req.FromRequest(r)

	if err := validator.ValidateQuery(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithPagination(w, http.StatusOK, bookings.Items, bookings.Pagination)
}

// Get returns a booking with its assigned driver.
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request, id string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Get")
	defer scope.End()

	if err := checkID(id); err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// Update applies a partial dispatcher update.
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request, id string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	if err := checkID(id); err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated by " + user)

	response.WithMessageAndJSON(w, http.StatusOK, messageUpdated, booking)
}

// Cancel soft deletes a booking.
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request, id string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	if err := checkID(id); err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled by " + user)

	response.WithMessage(w, http.StatusOK, messageCancelled)
}

// checkID rejects identifiers that cannot exist before they reach the database.
func checkID(id string) error {
	if validator.ValidateVar(id, "required,uuid") != nil {
		return failure.NotFound(messageNotFound) // nolint:wrapcheck
	}

	return nil
}
