package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"tatzy/infras/otel/mocks"
	bookingMocks "tatzy/internal/domains/booking/mocks"
	"tatzy/internal/domains/booking/model"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/internal/handlers/booking"
	"tatzy/shared/constant"
	"tatzy/shared/failure"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bookingID = "0f8fad5b-d9cb-469f-a165-70867728950e"

type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Errors     []failure.FieldError `json:"errors"`
	Pagination *dto.Pagination      `json:"pagination"`
}

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router, booking.Guards{})

	return svc, router
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func createPayload(pickup time.Time, website string) string {
	payload := map[string]any{
		"customerName":   "Jean Dupont",
		"customerPhone":  "(514) 555-1234",
		"pickupAddress":  "123 rue Principale, Montréal",
		"dropoffAddress": "456 avenue du Parc, Montréal",
		"pickupDateTime": pickup.UTC().Format(time.RFC3339),
		"website":        website,
	}

	body, _ := json.Marshal(payload)

	return string(body)
}

func createdResult(outcome dto.CreateOutcome, pickup time.Time) dto.CreateBookingResult {
	return dto.CreateBookingResult{
		Booking: dto.CreateBookingResponse{
			ID:             bookingID,
			Status:         model.StatusPending,
			PickupDateTime: pickup.UTC().Format(time.RFC3339),
		},
		Outcome: outcome,
	}
}

func TestHandler_Create(t *testing.T) {
	svc, router := setup(t)
	tomorrow := time.Now().Add(24 * time.Hour)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Cond(func(meta dto.RequestMetadata) bool {
			return meta.IPAddress == "203.0.113.7" && meta.Source == constant.SourceAPI
		})).
		Return(createdResult(dto.OutcomeCreated, tomorrow), nil)

	rec, env := do(t, router, http.MethodPost, "/bookings", createPayload(tomorrow, ""))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Réservation créée avec succès", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, "PENDING", data["status"])
	assert.Len(t, data, 3)
}

func TestHandler_Create_HoneypotIsIndistinguishable(t *testing.T) {
	svc, router := setup(t)
	tomorrow := time.Now().Add(24 * time.Hour)

	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(createdResult(dto.OutcomeCreated, tomorrow), nil)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Cond(func(req dto.CreateBookingRequest) bool { return req.IsSpam() }), gomock.Any()).
		Return(createdResult(dto.OutcomeRejected, tomorrow), nil)

	genuineRec, _ := do(t, router, http.MethodPost, "/bookings", createPayload(tomorrow, ""))
	spamRec, _ := do(t, router, http.MethodPost, "/bookings", createPayload(tomorrow, "http://cheap-pills.example"))

	assert.Equal(t, genuineRec.Code, spamRec.Code)
	assert.Equal(t, genuineRec.Header(), spamRec.Header())
	assert.JSONEq(t, genuineRec.Body.String(), spamRec.Body.String())
}

func TestHandler_Create_Traces(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name       string
		result     dto.CreateBookingResult
		err        error
		wantEvents []string
		wantErrors int
	}{
		{name: "created", result: createdResult(dto.OutcomeCreated, tomorrow), wantEvents: []string{"Booking created " + bookingID}},
		{name: "silently rejected", result: createdResult(dto.OutcomeRejected, tomorrow)},
		{name: "service error", err: errors.New("database error"), wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBookingService(ctrl)
			otel := mocks.NewOtel()

			router := chi.NewRouter()
			handler := booking.New(svc, otel)
			handler.Router(router, booking.Guards{})

			svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createPayload(tomorrow, ""))))

			scope := otel.Scope(constant.OtelHandlerScopeName + ".Create")
			require.NotNil(t, scope)

			assert.True(t, scope.Ended())
			assert.Equal(t, tt.wantEvents, scope.Events())
			assert.Len(t, scope.Errors(), tt.wantErrors)
		})
	}
}

func TestHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name:       "pickup in the past",
			body:       createPayload(time.Now().Add(-24*time.Hour), ""),
			wantFields: []string{"pickupDateTime"},
		},
		{
			name:       "missing required fields",
			body:       `{"customerName":"J","customerPhone":"123"}`,
			wantFields: []string{"customerName", "customerPhone", "pickupAddress", "dropoffAddress", "pickupDateTime"},
		},
		{
			name:       "wrong json type",
			body:       `{"customerName":42}`,
			wantFields: []string{"customerName", "customerPhone", "pickupAddress", "dropoffAddress", "pickupDateTime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup(t)

			rec, env := do(t, router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Données invalides", env.Message)

			fields := make([]string, 0, len(env.Errors))
			for _, fieldErr := range env.Errors {
				fields = append(fields, fieldErr.Field)
			}

			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestHandler_Create_MalformedBody(t *testing.T) {
	_, router := setup(t)

	rec, env := do(t, router, http.MethodPost, "/bookings", `{"customerName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Corps de requête invalide", env.Message)
	assert.Empty(t, env.Errors)
}

func TestHandler_List(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), dto.BookingQueryRequest{Page: "2", Limit: "1"}).
		Return(dto.GetBookingsResponse{
			Items:      []dto.BookingResponse{},
			Pagination: dto.Pagination{Page: 2, Limit: 1, Total: 1, TotalPages: 1},
		}, nil)

	rec, env := do(t, router, http.MethodGet, "/bookings?page=2&limit=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Total)
	assert.Equal(t, 1, env.Pagination.TotalPages)
}

func TestHandler_List_InvalidParams(t *testing.T) {
	_, router := setup(t)

	rec, env := do(t, router, http.MethodGet, "/bookings?page=0&status=LOST", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Paramètres invalides", env.Message)
	assert.Len(t, env.Errors, 2)
}

func TestHandler_List_ServiceError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{}, errors.New("connection refused"))

	rec, env := do(t, router, http.MethodGet, "/bookings", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}

func TestHandler_Get(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		setup    func(svc *bookingMocks.MockBookingService)
		wantCode int
	}{
		{
			name: "found",
			id:   bookingID,
			setup: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingResponse{ID: bookingID, Status: model.StatusPending}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown id",
			id:   bookingID,
			setup: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingResponse{}, failure.NotFound("Réservation non trouvée"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed id never reaches the service",
			id:       "not-an-id",
			setup:    func(*bookingMocks.MockBookingService) {},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setup(svc)

			rec, env := do(t, router, http.MethodGet, "/bookings/"+tt.id, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, env.Success)
		})
	}
}

func TestHandler_Update(t *testing.T) {
	svc, router := setup(t)
	notes := "x"

	svc.EXPECT().
		Update(gomock.Any(), dto.UpdateBookingRequest{DispatcherNotes: &notes}, bookingID).
		Return(dto.BookingResponse{ID: bookingID, Status: model.StatusAssigned, DispatcherNotes: &notes}, nil)

	rec, env := do(t, router, http.MethodPatch, "/bookings/"+bookingID, `{"dispatcherNotes":"x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Réservation mise à jour", env.Message)

	var data dto.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, model.StatusAssigned, data.Status)
}

func TestHandler_Update_ClearDriverReachesService(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Update(gomock.Any(), gomock.Cond(func(req dto.UpdateBookingRequest) bool {
			return req.DriverID.Set && !req.DriverID.Valid
		}), bookingID).
		Return(dto.BookingResponse{ID: bookingID}, nil)

	rec, _ := do(t, router, http.MethodPatch, "/bookings/"+bookingID, `{"driverId":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Update_Invalid(t *testing.T) {
	_, router := setup(t)

	rec, env := do(t, router, http.MethodPatch, "/bookings/"+bookingID, `{"status":"LOST","finalPrice":-3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.Errors, 2)
}

func TestHandler_Update_EmptyDriverID(t *testing.T) {
	_, router := setup(t)

	rec, env := do(t, router, http.MethodPatch, "/bookings/"+bookingID, `{"driverId":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "driverId", env.Errors[0].Field)
}

func TestHandler_Cancel(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(nil)

	rec, env := do(t, router, http.MethodDelete, "/bookings/"+bookingID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Réservation annulée", env.Message)
}

func TestHandler_Cancel_NotFound(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(failure.NotFound("Réservation non trouvée"))

	rec, env := do(t, router, http.MethodDelete, "/bookings/"+bookingID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Réservation non trouvée", env.Message)
}

func TestHandler_Router_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	router := chi.NewRouter()
	handler.Router(router, booking.Guards{Admin: deny})

	for _, target := range []string{"/bookings", "/bookings/" + bookingID} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
