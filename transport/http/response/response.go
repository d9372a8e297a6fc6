package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"tatzy/config"
	"tatzy/shared/constant"
	"tatzy/shared/failure"
	"tatzy/shared/logger"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message,omitempty"`
	Data       any                  `json:"data,omitempty"`
	Errors     []failure.FieldError `json:"errors,omitempty"`
	Pagination any                  `json:"pagination,omitempty"`
}

// Data documents a successful envelope carrying a payload.
type Data[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// List documents a successful envelope carrying one page of items.
type List[T, P any] struct {
	Success    bool `json:"success" example:"true"`
	Data       []T  `json:"data"`
	Pagination P    `json:"pagination"`
}

// Message documents an envelope with a message only.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error documents a failed envelope.
type Error struct {
	Success bool                 `json:"success" example:"false"`
	Message string               `json:"message"`
	Errors  []failure.FieldError `json:"errors,omitempty"`
}

var isProduction = func() bool { return config.Get().IsProduction() }

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Envelope{Success: true, Data: payload})
}

// WithMessageAndJSON sends a message together with a JSON object
func WithMessageAndJSON(writer http.ResponseWriter, code int, message string, payload any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: payload})
}

// WithPagination sends one page of items along with its pagination metadata
func WithPagination(writer http.ResponseWriter, code int, items, pagination any) {
	response(writer, code, Envelope{Success: true, Data: items, Pagination: pagination})
}

// WithError sends a response with an error message. Unexpected errors are
// logged and their detail is hidden in production.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	envelope := Envelope{Message: err.Error()}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		envelope.Message = fail.Message
		envelope.Errors = fail.Errors
	}

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		if isProduction() {
			envelope.Message = constant.ResponseErrorInternal
		}
	}

	response(writer, code, envelope)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithNotFound sends the fallback response for unknown endpoints
func WithNotFound(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorEndpointNotFound)
}

// WithMethodNotAllowed sends the fallback response for unsupported verbs
func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

// WithRaw sends payload as is, without the envelope
func WithRaw(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
