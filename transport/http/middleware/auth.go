package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"
	"tatzy/config"
	"tatzy/infras/jwt"
	"tatzy/infras/otel"
	"tatzy/shared/constant"
	"tatzy/shared/failure"
	"tatzy/transport/http/response"

	"github.com/rs/zerolog/log"
)

const internalCaller = "internal"

// Admin guards the dispatcher routes. Until ADMIN_AUTH_ENABLE is set every
// request passes through, which matches deployments restricted at the network level.
type Admin interface {
	Admin(next http.Handler) http.Handler
}

type adminImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAdminMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Admin {
	return &adminImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// Admin accepts either the internal API key or a dispatcher bearer token.
func (m *adminImpl) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.cfg.App.AdminAuth.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, "admin.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "admin",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		if apiKey := request.Header.Get(constant.RequestHeaderAPIKey); apiKey != "" {
			scope.SetAttribute("http.source", internalCaller)

			if m.cfg.App.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
				scope.TraceError(failure.ForbiddenError)
				response.WithError(writer, failure.ForbiddenError)

				return
			}

			ctx = context.WithValue(ctx, constant.ContextKeyUserID, internalCaller)
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "client")

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			err = failure.Unauthorized(constant.ResponseErrorUnauthorized)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := constant.ResponseErrorTokenInvalid
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = constant.ResponseErrorTokenExpired
			}

			if errors.Is(err, jwt.ErrMissingSecret) {
				log.Error().Err(err).Msg("admin auth is enabled without JWT_ACCESS_SECRET")
			}

			err = failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if claims.DispatcherID == "" {
			log.Error().Msg("JWT claims: DispatcherID is empty")

			response.WithError(writer, failure.Unauthorized(constant.ResponseErrorTokenInvalid))

			return
		}

		if roles := m.cfg.App.AdminAuth.Roles; len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			scope.SetAttributes(map[string]any{
				"user_role":     claims.Role,
				"allowed_roles": roles,
				"reason":        "role_not_allowed",
			})
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.DispatcherID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
