package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
	ContextAdmin = "admin"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSortBy   = "sort_by"
	RequestParamSortDir  = "sort_dir"
	RequestParamStatus   = "status"
	RequestParamDriverID = "driverId"
	RequestParamFromDate = "fromDate"
	RequestParamToDate   = "toDate"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 20
	MaxValueLimit       = 100
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRetryAfter         = "Retry-After"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	SourceAPI = "api"
	SourceWeb = "web"
)

// User-facing messages are French, the language of the booking site.
const (
	ResponseErrorPrepareShutdown      = "Serveur en cours d'arrêt"
	ResponseErrorUnhealthy            = "Serveur indisponible"
	ResponseErrorRequestLimitExceeded = "Trop de requêtes, veuillez réessayer plus tard"
	ResponseErrorInternal             = "Erreur serveur"
	ResponseErrorInvalidData          = "Données invalides"
	ResponseErrorInvalidParams        = "Paramètres invalides"
	ResponseErrorInvalidBody          = "Corps de requête invalide"
	ResponseErrorEndpointNotFound     = "Endpoint non trouvé"
	ResponseErrorMethodNotAllowed     = "Méthode non autorisée"
	ResponseErrorUnauthorized         = "Authentification requise"
	ResponseErrorForbidden            = "Accès refusé"
	ResponseErrorTokenExpired         = "Session expirée"
	ResponseErrorTokenInvalid         = "Jeton invalide"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
